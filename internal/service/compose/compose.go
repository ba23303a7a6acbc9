// Package compose renders the three recipient-specific notification bodies
// for a validated submission. Pure formatting, no I/O, so identical inputs
// always produce byte-identical output.
package compose

import (
	"fmt"

	pricingdomain "premiumpay-service/internal/domain/pricing"
	"premiumpay-service/internal/domain/submission"
)

// Bundle holds everything the dispatcher needs to notify all three
// recipients of one submission.
type Bundle struct {
	AdminText string
	BuyerText string
	PromoText string
	Proof     []byte
	ProofName string
}

// Render composes all three messages. moderatorContact is the static link
// the buyer is told to reach the moderator on.
func Render(sub *submission.Submission, p pricingdomain.Resolved, moderatorContact string) Bundle {
	return Bundle{
		AdminText: adminText(sub, p),
		BuyerText: buyerText(sub, p, moderatorContact),
		PromoText: promoText(sub, p),
		Proof:     sub.Proof,
		ProofName: sub.ProofName,
	}
}

// adminText carries the full submission detail. The proof image travels as
// an attachment, never inlined here.
func adminText(sub *submission.Submission, p pricingdomain.Resolved) string {
	desc := sub.Description
	if desc == "" {
		desc = "N/A"
	}

	return fmt.Sprintf(`🚨 NEW PREMIUM PAYMENT

Buyer: %s
Telegram ID: %d

Plan: %s
Price: ₦%d ≈ $%s
Payment: %s

Promo ID: %s
WhatsApp: %s
Call: %s

Description:
%s

Ref: %s
`,
		sub.Buyer.FullName(),
		sub.Buyer.ID,
		p.PlanLabel,
		p.PriceNGN, p.PriceUSD,
		sub.Method,
		sub.PromoID,
		sub.Whatsapp,
		sub.Call,
		desc,
		sub.Ref,
	)
}

// buyerText confirms the claim back to the buyer. Nothing admin-only leaks
// here: no admin chat id, no reference id, no free-text description.
func buyerText(sub *submission.Submission, p pricingdomain.Resolved, moderatorContact string) string {
	return fmt.Sprintf(`✅ Premium Payment Submitted

Plan: %s
Price: ₦%d ≈ $%s
Promo ID: %s
WhatsApp: %s

Contact moderator:
%s
`,
		p.PlanLabel,
		p.PriceNGN, p.PriceUSD,
		sub.PromoID,
		sub.Whatsapp,
		moderatorContact,
	)
}

// promoText tells the promo owner what they earned. Only the buyer's first
// name appears; their telegram id and contact fields never do.
func promoText(sub *submission.Submission, p pricingdomain.Resolved) string {
	return fmt.Sprintf(`🎉 Someone used your promo ID!

Buyer: %s
Plan: %s
Price: ₦%d ≈ $%s

Your earning:
₦%d ≈ $%s
`,
		sub.Buyer.FirstName,
		p.PlanLabel,
		p.PriceNGN, p.PriceUSD,
		p.EarnNGN, p.EarnUSD,
	)
}
