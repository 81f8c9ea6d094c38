package ledger

import "errors"

var (
	ErrBillNotFound    = errors.New("bill not found")
	ErrInvalidCategory = errors.New("unknown fertilizer category")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrNoItems         = errors.New("bill needs at least one item")
)
