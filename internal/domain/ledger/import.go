package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ImportResult struct {
	BillsCreated  int      `json:"bills_created"`
	ItemsImported int      `json:"items_imported"`
	Errors        []string `json:"errors,omitempty"`
}

// ImportCSV rebuilds bills from a flat export file. Grouping is by
// adjacency: consecutive rows sharing a (purchase date, raw bill number)
// key accumulate into one bill, and a key change finalizes the previous
// bill with a recomputed total. Non-contiguous rows with the same key
// therefore produce separate bills; that mirrors the export ordering and
// keeps the import a single streaming pass.
//
// Row-level problems never abort the batch: short rows are skipped
// silently, a bad price is recorded against its 1-based row number (the
// header is row 1), a bad date falls back to today and an unknown category
// is coerced to the default. Storage failures roll back the whole import.
func (s *Service) ImportCSV(ctx context.Context, userID string, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Header row is skipped unconditionally, not validated.
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return &ImportResult{}, nil
		}
		return nil, err
	}

	result := ImportResult{}
	today := dateOnly(s.now())

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		var currentBill *Bill
		currentKey := ""

		finalize := func() error {
			if currentBill == nil {
				return nil
			}
			currentBill.RecomputeTotal()
			return tx.UpdateBillTotal(ctx, userID, currentBill.ID, currentBill.TotalAmount)
		}

		for rowNum := 2; ; rowNum++ {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
				continue
			}
			if len(row) < 4 {
				continue
			}

			billNumber := strings.TrimSpace(row[1])
			name := strings.TrimSpace(row[2])

			category := strings.TrimSpace(row[3])
			if !ValidCategory(category) {
				category = DefaultCategory
			}

			price := 0.0
			if len(row) > 4 {
				price, err = ParseMoney(row[4])
				if err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
					continue
				}
			}

			purchaseDate, err := time.Parse("2006-01-02", strings.TrimSpace(row[0]))
			if err != nil {
				purchaseDate = today
			}

			key := purchaseDate.Format("2006-01-02") + "_" + billNumber
			if key != currentKey {
				if err := finalize(); err != nil {
					return err
				}

				bill := Bill{
					ID:           uuid.NewString(),
					UserID:       userID,
					PurchaseDate: purchaseDate,
				}
				if billNumber != "" {
					number := billNumber
					bill.BillNumber = &number
				}
				if err := tx.CreateBill(ctx, &bill); err != nil {
					return err
				}
				currentBill = &bill
				currentKey = key
				result.BillsCreated++
			}

			if name != "" {
				item := LineItem{
					ID:       uuid.NewString(),
					BillID:   currentBill.ID,
					Name:     name,
					Category: category,
					Price:    price,
				}
				if err := tx.CreateLineItems(ctx, []LineItem{item}); err != nil {
					return err
				}
				currentBill.Items = append(currentBill.Items, item)
				result.ItemsImported++
			}
		}

		// The in-progress bill still needs its total after the last row.
		return finalize()
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// ParseMoney accepts plain decimals plus the export tolerances: a leading
// currency symbol and thousands commas are stripped before parsing.
func ParseMoney(value string) (float64, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.ReplaceAll(cleaned, "₹", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", value)
	}
	return parsed, nil
}
