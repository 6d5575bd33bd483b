// Package report renders dashboard data as spreadsheet downloads.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"authapi/internal/domain"
)

const dashboardSheet = "Dashboard"

var dashboardHeaders = []string{
	"Username", "Email", "Profession", "Todos Completed", "Todos Pending", "Inventory Items",
}

// DashboardXLSX renders stats as a single-sheet workbook with a header row
// followed by one value row.
func DashboardXLSX(stats *domain.DashboardStats) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", dashboardSheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	profession := ""
	if stats.Profession != nil {
		profession = *stats.Profession
	}
	values := []interface{}{
		stats.Username, stats.Email, profession,
		stats.TodosCompleted, stats.TodosPending, stats.InventoryItems,
	}

	header := make([]interface{}, len(dashboardHeaders))
	for i, h := range dashboardHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(dashboardSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	if err := f.SetSheetRow(dashboardSheet, "A2", &values); err != nil {
		return nil, fmt.Errorf("writing values: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(dashboardSheet, 1, 1, style); err != nil {
		return nil, fmt.Errorf("styling header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
