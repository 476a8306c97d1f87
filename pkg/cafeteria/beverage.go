package cafeteria

import "github.com/shopspring/decimal"

// Beverage is anything with a price and a description, base or decorated.
type Beverage interface {
	Description() string
	Price() decimal.Decimal
}

var (
	priceEspresso   = decimal.RequireFromString("5.00")
	priceCappuccino = decimal.RequireFromString("8.00")
	priceLatte      = decimal.RequireFromString("7.50")

	surchargeLeite     = decimal.RequireFromString("1.50")
	surchargeChocolate = decimal.RequireFromString("2.00")
	surchargeChantilly = decimal.RequireFromString("2.50")
)

type baseBeverage struct {
	description string
	price       decimal.Decimal
}

func (b baseBeverage) Description() string    { return b.description }
func (b baseBeverage) Price() decimal.Decimal { return b.price }

func NewEspresso() Beverage   { return baseBeverage{"Espresso", priceEspresso} }
func NewCappuccino() Beverage { return baseBeverage{"Cappuccino", priceCappuccino} }
func NewLatte() Beverage      { return baseBeverage{"Latte", priceLatte} }

// NewBeverage builds a base beverage with a fixed price, for menu entries
// beyond the built-in ones.
func NewBeverage(description string, price decimal.Decimal) Beverage {
	return baseBeverage{description: description, price: price}
}

type extra struct {
	wrapped   Beverage
	label     string
	surcharge decimal.Decimal
}

func (e extra) Description() string    { return e.wrapped.Description() + " + " + e.label }
func (e extra) Price() decimal.Decimal { return e.wrapped.Price().Add(e.surcharge) }

// NewExtra wraps a beverage with an add-on. Extras nest without limit; the
// wrapping order changes the description text but never the total.
func NewExtra(b Beverage, label string, surcharge decimal.Decimal) Beverage {
	return extra{wrapped: b, label: label, surcharge: surcharge}
}

func Leite(b Beverage) Beverage     { return NewExtra(b, "Leite", surchargeLeite) }
func Chocolate(b Beverage) Beverage { return NewExtra(b, "Chocolate", surchargeChocolate) }
func Chantilly(b Beverage) Beverage { return NewExtra(b, "Chantilly", surchargeChantilly) }
