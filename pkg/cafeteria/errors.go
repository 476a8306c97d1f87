package cafeteria

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownItem           = errors.New("cafeteria: unknown item")
	ErrInvalidPaymentDetails = errors.New("cafeteria: invalid payment details")
	ErrNoPaymentStrategy     = errors.New("cafeteria: no payment strategy set")
	ErrEmptyOrder            = errors.New("cafeteria: order has no items")
	ErrInvalidAmount         = errors.New("cafeteria: amount must be positive")
	ErrEmptyCustomer         = errors.New("cafeteria: customer name is required")
)

type OrderError struct {
	Op      string
	OrderID string
	Err     error
}

func (e *OrderError) Error() string {
	if e.OrderID != "" {
		return fmt.Sprintf("cafeteria.%s [%s]: %v", e.Op, e.OrderID, e.Err)
	}
	return fmt.Sprintf("cafeteria.%s: %v", e.Op, e.Err)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}

func IsUnknownItem(err error) bool {
	return errors.Is(err, ErrUnknownItem)
}

func IsInvalidPaymentDetails(err error) bool {
	return errors.Is(err, ErrInvalidPaymentDetails)
}

func IsNoPaymentStrategy(err error) bool {
	return errors.Is(err, ErrNoPaymentStrategy)
}
