package submission

import (
	"encoding/base64"
	"strconv"
	"strings"

	pricingdomain "premiumpay-service/internal/domain/pricing"
	domain "premiumpay-service/internal/domain/submission"
	xerrors "premiumpay-service/internal/pkg/errors"
)

// MaxProofBytes caps the decoded proof image at 5 MiB.
const MaxProofBytes = 5 << 20

// validate turns a raw request into a Submission or fails on the first
// missing or malformed field. Check order is fixed: buyer, promo id, plan,
// method, proof, whatsapp, call. No side effects; nothing downstream runs
// until this passes.
func validate(req *domain.SubmitRequest, allowList []string) (*domain.Submission, error) {
	if req.Buyer == nil {
		return nil, xerrors.MissingField("buyer")
	}
	if req.Buyer.ID <= 0 {
		return nil, xerrors.InvalidField("buyer", "Invalid buyer identity")
	}

	promoChatID, err := validatePromo(req.PromoID, allowList)
	if err != nil {
		return nil, err
	}

	if req.Plan == "" {
		return nil, xerrors.MissingField("plan")
	}
	plan := pricingdomain.PlanCode(req.Plan)
	if !plan.Valid() {
		return nil, xerrors.InvalidField("plan", "Invalid plan")
	}

	if req.Method == "" {
		return nil, xerrors.MissingField("method")
	}
	method := domain.PaymentMethod(req.Method)
	if method != domain.MethodBank && method != domain.MethodCrypto {
		return nil, xerrors.InvalidField("method", "Invalid payment method")
	}

	if req.Proof == "" {
		return nil, xerrors.MissingField("proof")
	}
	proof, proofName, err := decodeProof(req.Proof)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Whatsapp) == "" {
		return nil, xerrors.MissingField("whatsapp")
	}
	if strings.TrimSpace(req.Call) == "" {
		return nil, xerrors.MissingField("call")
	}

	return &domain.Submission{
		Buyer:       *req.Buyer,
		Plan:        plan,
		Method:      method,
		Proof:       proof,
		ProofName:   proofName,
		Whatsapp:    strings.TrimSpace(req.Whatsapp),
		Call:        strings.TrimSpace(req.Call),
		Description: strings.TrimSpace(req.Desc),
		PromoID:     strings.TrimSpace(req.PromoID),
		PromoChatID: promoChatID,
	}, nil
}

// validatePromo is the authoritative promo-id rule: the id must parse as a
// Telegram chat id, and when an allow-list is configured it must be a
// member. The client's own promo list is never trusted.
func validatePromo(promoID string, allowList []string) (int64, error) {
	promoID = strings.TrimSpace(promoID)
	if promoID == "" {
		return 0, xerrors.MissingField("promoId")
	}

	chatID, err := strconv.ParseInt(promoID, 10, 64)
	if err != nil || chatID <= 0 {
		return 0, xerrors.InvalidField("promoId", "Invalid promo ID")
	}

	if len(allowList) > 0 {
		for _, allowed := range allowList {
			if allowed == promoID {
				return chatID, nil
			}
		}
		return 0, xerrors.InvalidField("promoId", "Invalid promo ID")
	}

	return chatID, nil
}

// decodeProof accepts either a data URI or bare base64 and returns the image
// bytes plus a filename matching the declared media type.
func decodeProof(raw string) ([]byte, string, error) {
	encoded := raw
	name := "proof.jpg"

	if strings.HasPrefix(raw, "data:") {
		meta, rest, found := strings.Cut(raw, ",")
		if !found {
			return nil, "", xerrors.InvalidField("proof", "Invalid proof image")
		}
		encoded = rest

		switch {
		case strings.Contains(meta, "image/png"):
			name = "proof.png"
		case strings.Contains(meta, "image/webp"):
			name = "proof.webp"
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", xerrors.InvalidField("proof", "Invalid proof image")
	}
	if len(decoded) == 0 {
		return nil, "", xerrors.MissingField("proof")
	}
	if len(decoded) > MaxProofBytes {
		return nil, "", xerrors.InvalidField("proof", "Image must be under 5MB")
	}

	return decoded, name, nil
}
