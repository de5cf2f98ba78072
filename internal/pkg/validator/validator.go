package validator

import (
	"fmt"
	"strings"

	api "github.com/s21platform/livestream-service/internal/generated"
)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateTrack(req *api.CreateTrackRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("track name is required")
	}

	if req.PriceMsat != nil && *req.PriceMsat < 0 {
		return fmt.Errorf("price_msat cannot be negative")
	}

	hasProducerID := req.ProducerId != nil && strings.TrimSpace(*req.ProducerId) != ""
	hasProducerName := req.ProducerName != nil && strings.TrimSpace(*req.ProducerName) != ""

	if !hasProducerID && !hasProducerName {
		return fmt.Errorf("producer_id or producer_name is required")
	}

	return nil
}

func (v *Validator) ValidateFee(feePct int64) error {
	if feePct < 0 || feePct > 100 {
		return fmt.Errorf("fee_pct must be between 0 and 100, got %d", feePct)
	}

	return nil
}
