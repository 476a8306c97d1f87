package cafeteria

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusReceived  Status = "RECEIVED"
	StatusPreparing Status = "PREPARING"
	StatusReady     Status = "READY"
	StatusDelivered Status = "DELIVERED"
)

// Order holds the ordered beverages, the selected payment strategy and the
// current status. Status changes notify registered observers synchronously,
// in registration order. Duplicate registrations are allowed and notified
// once per registration.
type Order struct {
	ID       string
	Customer string

	items     []Beverage
	status    Status
	payment   PaymentStrategy
	observers []Observer
	logger    Logger
}

type OrderOption func(*Order)

func WithLogger(logger Logger) OrderOption {
	return func(o *Order) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithID(id string) OrderOption {
	return func(o *Order) {
		o.ID = id
	}
}

func NewOrder(customer string, opts ...OrderOption) (*Order, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return nil, &OrderError{Op: "NewOrder", Err: ErrEmptyCustomer}
	}

	o := &Order{
		ID:       uuid.NewString(),
		Customer: customer,
		status:   StatusReceived,
		logger:   noopLogger{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (o *Order) ShortID() string {
	if len(o.ID) > 8 {
		return o.ID[:8]
	}
	return o.ID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Items() []Beverage {
	return o.items
}

func (o *Order) AddItem(b Beverage) {
	if b == nil {
		return
	}
	o.items = append(o.items, b)
}

func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	return total
}

func (o *Order) SetPaymentStrategy(strategy PaymentStrategy) {
	o.payment = strategy
}

func (o *Order) ProcessPayment() (*Receipt, error) {
	if o.payment == nil {
		return nil, &OrderError{Op: "ProcessPayment", OrderID: o.ShortID(), Err: ErrNoPaymentStrategy}
	}
	if len(o.items) == 0 {
		return nil, &OrderError{Op: "ProcessPayment", OrderID: o.ShortID(), Err: ErrEmptyOrder}
	}
	o.logger.Debug("processing payment of R$%s via %s", o.Total().StringFixed(2), o.payment.Name())
	return o.payment.Pay(o.Total())
}

func (o *Order) AddObserver(obs Observer) {
	if obs == nil {
		return
	}
	o.observers = append(o.observers, obs)
}

// RemoveObserver drops the first matching registration, if any.
func (o *Order) RemoveObserver(obs Observer) {
	for i, registered := range o.observers {
		if registered == obs {
			o.observers = append(o.observers[:i], o.observers[i+1:]...)
			return
		}
	}
}

// SetStatus assigns the status unconditionally; there is no transition
// table. Every assignment notifies all observers with the new status.
func (o *Order) SetStatus(status Status) {
	o.status = status
	for _, obs := range o.observers {
		o.notify(obs, status)
	}
}

// notify shields the fan-out loop from a misbehaving observer: a panic is
// recovered and logged so the remaining observers still run.
func (o *Order) notify(obs Observer, status Status) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("observer panicked on order #%s (%s): %v", o.ShortID(), status, r)
		}
	}()
	obs.OrderChanged(o, status)
}

func (o *Order) Summary() string {
	sep := strings.Repeat("=", 50)
	line := strings.Repeat("-", 50)

	var b strings.Builder
	fmt.Fprintln(&b, sep)
	fmt.Fprintf(&b, "ORDER #%s - Customer: %s\n", o.ShortID(), o.Customer)
	fmt.Fprintf(&b, "Status: %s\n", o.status)
	fmt.Fprintln(&b, line)

	if len(o.items) == 0 {
		fmt.Fprintln(&b, "  (no items)")
	} else {
		for i, item := range o.items {
			fmt.Fprintf(&b, "  %d. %s - R$%s\n", i+1, item.Description(), item.Price().StringFixed(2))
		}
	}

	fmt.Fprintln(&b, line)
	fmt.Fprintf(&b, "TOTAL: R$%s\n", o.Total().StringFixed(2))
	fmt.Fprint(&b, sep)
	return b.String()
}
