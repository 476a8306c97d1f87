package cafeteria

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Receipt is the outcome of a payment attempt. A declined payment (e.g. not
// enough cash) yields Approved=false without an error; errors are reserved
// for invalid input.
type Receipt struct {
	Method   string
	Amount   decimal.Decimal
	Approved bool
	Change   decimal.Decimal
	Message  string
}

type PaymentStrategy interface {
	Name() string
	Pay(amount decimal.Decimal) (*Receipt, error)
}

type CardPayment struct {
	Number string
}

func NewCardPayment(number string) *CardPayment {
	return &CardPayment{Number: number}
}

func (p *CardPayment) Name() string { return "Cartão de Crédito" }

func (p *CardPayment) Pay(amount decimal.Decimal) (*Receipt, error) {
	number := strings.TrimSpace(p.Number)
	if len(number) < 4 {
		return nil, &OrderError{
			Op:  "Pay",
			Err: fmt.Errorf("%w: card number must have at least 4 digits", ErrInvalidPaymentDetails),
		}
	}
	if !amount.IsPositive() {
		return nil, &OrderError{Op: "Pay", Err: ErrInvalidAmount}
	}
	return &Receipt{
		Method:   p.Name(),
		Amount:   amount,
		Approved: true,
		Message:  fmt.Sprintf("charged R$%s to card **%s", amount.StringFixed(2), number[len(number)-4:]),
	}, nil
}

type PixPayment struct {
	Key string
}

func NewPixPayment(key string) *PixPayment {
	return &PixPayment{Key: key}
}

func (p *PixPayment) Name() string { return "PIX" }

func (p *PixPayment) Pay(amount decimal.Decimal) (*Receipt, error) {
	key := strings.TrimSpace(p.Key)
	if key == "" {
		return nil, &OrderError{
			Op:  "Pay",
			Err: fmt.Errorf("%w: PIX key must not be blank", ErrInvalidPaymentDetails),
		}
	}
	if !amount.IsPositive() {
		return nil, &OrderError{Op: "Pay", Err: ErrInvalidAmount}
	}
	return &Receipt{
		Method:   p.Name(),
		Amount:   amount,
		Approved: true,
		Message:  fmt.Sprintf("PIX of R$%s sent to %s", amount.StringFixed(2), key),
	}, nil
}

type CashPayment struct {
	Tendered decimal.Decimal
}

func NewCashPayment(tendered decimal.Decimal) *CashPayment {
	return &CashPayment{Tendered: tendered}
}

func (p *CashPayment) Name() string { return "Dinheiro" }

func (p *CashPayment) Pay(amount decimal.Decimal) (*Receipt, error) {
	if !p.Tendered.IsPositive() {
		return nil, &OrderError{
			Op:  "Pay",
			Err: fmt.Errorf("%w: tendered cash must be positive", ErrInvalidPaymentDetails),
		}
	}
	if !amount.IsPositive() {
		return nil, &OrderError{Op: "Pay", Err: ErrInvalidAmount}
	}
	if p.Tendered.LessThan(amount) {
		missing := amount.Sub(p.Tendered)
		return &Receipt{
			Method:  p.Name(),
			Amount:  amount,
			Message: fmt.Sprintf("insufficient cash: missing R$%s", missing.StringFixed(2)),
		}, nil
	}
	change := p.Tendered.Sub(amount)
	return &Receipt{
		Method:   p.Name(),
		Amount:   amount,
		Approved: true,
		Change:   change,
		Message:  fmt.Sprintf("paid R$%s in cash, change R$%s", p.Tendered.StringFixed(2), change.StringFixed(2)),
	}, nil
}
