package submission

// DTOs

// SubmitRequest is the raw /send body as the payment form posts it. Field
// presence and shape are re-checked server-side; nothing here is trusted.
type SubmitRequest struct {
	Buyer    *Buyer `json:"buyer"`
	PromoID  string `json:"promoId"`
	Plan     string `json:"plan"`
	Method   string `json:"method"`
	Proof    string `json:"proof"`
	Whatsapp string `json:"whatsapp"`
	Call     string `json:"call"`
	Desc     string `json:"desc"`
}

// VerifyPromoRequest is the /promo/verify body.
type VerifyPromoRequest struct {
	PromoID string `json:"promoId"`
}
