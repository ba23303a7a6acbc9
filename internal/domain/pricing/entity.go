package pricing

// PlanCode identifies a premium plan as submitted by the payment form.
type PlanCode string

const (
	PlanWeek     PlanCode = "7"
	PlanTwoWeeks PlanCode = "14"
	PlanForever  PlanCode = "forever"
)

// PlanPricing holds the fixed NGN price of a plan and the referral payout
// the promo owner earns when the plan is bought through their promo ID.
type PlanPricing struct {
	PriceNGN int64
	EarnNGN  int64
}

// Table is the static pricing table. Read-only for the process lifetime.
var Table = map[PlanCode]PlanPricing{
	PlanWeek:     {PriceNGN: 3500, EarnNGN: 1000},
	PlanTwoWeeks: {PriceNGN: 7000, EarnNGN: 2000},
	PlanForever:  {PriceNGN: 20000, EarnNGN: 5000},
}

// Valid reports whether the code is one of the recognized plans.
func (p PlanCode) Valid() bool {
	_, ok := Table[p]
	return ok
}

// Label returns the human-readable plan name, or "" for unknown codes.
func (p PlanCode) Label() string {
	switch p {
	case PlanWeek:
		return "7 days plan"
	case PlanTwoWeeks:
		return "14 days plan"
	case PlanForever:
		return "Forever plan"
	}
	return ""
}

// Lookup is total over all codes: unknown codes price to zero rather than
// erroring, so derived amounts are always defined.
func Lookup(p PlanCode) PlanPricing {
	return Table[p]
}

// Resolved is the per-submission pricing derived from the table and the
// current NGN→USD exchange rate. Immutable once produced.
type Resolved struct {
	PlanLabel string
	PriceNGN  int64
	EarnNGN   int64
	PriceUSD  string
	EarnUSD   string

	Rate         float64
	RateFallback bool
}
