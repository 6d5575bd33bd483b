package domain

// AuthProvider identifies how an account was originally created.
type AuthProvider string

const (
	AuthProviderEmail    AuthProvider = "email"
	AuthProviderGoogle   AuthProvider = "google"
	AuthProviderFacebook AuthProvider = "facebook"
	AuthProviderTwitter  AuthProvider = "twitter"
)

// Valid reports whether p is one of the known providers.
func (p AuthProvider) Valid() bool {
	switch p {
	case AuthProviderEmail, AuthProviderGoogle, AuthProviderFacebook, AuthProviderTwitter:
		return true
	}
	return false
}

const (
	MinPasswordLength = 8
	MaxPasswordLength = 68
	MaxPasswordBytes  = 72
)
