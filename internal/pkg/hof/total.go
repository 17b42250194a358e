package hof

// Total applies discounts to a fixed amount.
type Total struct {
	amount float64
}

// NewTotal creates a total for amount
func NewTotal(amount float64) *Total {
	return &Total{amount: amount}
}

// Discount returns the amount reduced by rate. The stored amount is never
// changed, so every call discounts the original value.
func (t *Total) Discount(rate float64) float64 {
	return t.amount - rate*t.amount
}

// Amount returns the original amount
func (t *Total) Amount() float64 {
	return t.amount
}
