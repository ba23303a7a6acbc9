package submission

import (
	"premiumpay-service/internal/domain/pricing"
)

// PaymentMethod is how the buyer claims to have paid.
type PaymentMethod string

const (
	MethodBank   PaymentMethod = "bank"
	MethodCrypto PaymentMethod = "crypto"
)

// Buyer is the platform-supplied identity of the submitting user.
type Buyer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
}

// FullName joins first and last name, tolerating an absent last name.
func (b Buyer) FullName() string {
	if b.LastName == "" {
		return b.FirstName
	}
	return b.FirstName + " " + b.LastName
}

// Submission is a validated payment claim. Built once at request arrival,
// immutable afterwards, never persisted.
type Submission struct {
	Ref         string
	Buyer       Buyer
	Plan        pricing.PlanCode
	Method      PaymentMethod
	Proof       []byte
	ProofName   string
	Whatsapp    string
	Call        string
	Description string
	PromoID     string
	PromoChatID int64
}
