package notification

// RecipientRole names one of the three notification targets of a submission.
type RecipientRole string

const (
	RoleAdmin      RecipientRole = "admin"
	RoleBuyer      RecipientRole = "buyer"
	RolePromoOwner RecipientRole = "promo_owner"
)

// Outcome is the per-recipient delivery result. Three are produced per
// submission; they exist only for the response log, never persisted.
type Outcome struct {
	Role        RecipientRole `json:"role"`
	Delivered   bool          `json:"delivered"`
	ErrorDetail string        `json:"error_detail,omitempty"`
}

// Delivered reports whether every outcome in the set succeeded.
func Delivered(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if !o.Delivered {
			return false
		}
	}
	return true
}
