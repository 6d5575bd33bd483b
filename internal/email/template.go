package email

import (
	"fmt"
	"net/url"
)

// VerificationSubject is the subject line of the account activation email.
const VerificationSubject = "Verify your email"

// VerificationURL builds the activation link served by GET /email-verify/.
func VerificationURL(baseURL, token string) string {
	return fmt.Sprintf("%s/email-verify/?token=%s", baseURL, url.QueryEscape(token))
}

// VerificationText renders the plain-text body.
func VerificationText(name, verifyURL string) string {
	return fmt.Sprintf("Hi %s,\n\nUse the link below to verify your email:\n%s\n", name, verifyURL)
}

// VerificationHTML renders the HTML body.
func VerificationHTML(name, verifyURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Verify your email</h2>
  <p>Hi %s,</p>
  <p>Use the button below to activate your account:</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Activate account</a>
  </p>
  <p>Or copy and paste this link into your browser:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
</body>
</html>`, name, verifyURL, verifyURL)
}
