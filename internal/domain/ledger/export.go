package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// CSVHeader is part of the external file contract and must precede data rows
// in both directions.
var CSVHeader = []string{
	"Purchase Date",
	"Bill Number",
	"Fertilizer Name",
	"Category",
	"Price (₹)",
	"Bill Total (₹)",
	"Items in Bill",
}

// ExportCSV writes one row per line item, bills ordered newest purchase date
// first. The parent bill's total and item count repeat on every row of that
// bill.
func (s *Service) ExportCSV(ctx context.Context, userID string, w io.Writer) error {
	bills, err := s.repo.ListBills(ctx, userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}

	for _, bill := range bills {
		for _, item := range bill.Items {
			record := []string{
				bill.PurchaseDate.Format("2006-01-02"),
				bill.DisplayNumber(),
				item.Name,
				item.Category,
				fmt.Sprintf("%.2f", item.Price),
				fmt.Sprintf("%.2f", bill.TotalAmount),
				fmt.Sprintf("%d", len(bill.Items)),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSampleCSV emits a small import template with two multi-item bills.
func WriteSampleCSV(w io.Writer) error {
	rows := [][]string{
		{"Purchase Date", "Bill Number", "Fertilizer Name", "Category", "Price (₹)"},
		{"2025-01-15", "BILL-001", "Coromandel Urea", "Urea", "350.00"},
		{"2025-01-15", "BILL-001", "IFFCO DAP", "DAP", "1200.00"},
		{"2025-01-16", "BILL-002", "Krishak NPK", "NPK", "850.00"},
		{"2025-01-16", "BILL-002", "MOP Fertilizer", "MOP", "600.00"},
	}

	writer := csv.NewWriter(w)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
