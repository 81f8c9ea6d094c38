package expenses

import "errors"

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrCategoryUnknown  = errors.New("unknown expense category")
	ErrCategoryNotFound = errors.New("expense category not found")
	ErrNegativeAmount   = errors.New("total amount must not be negative")
)
