package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/livestream-service/internal/config"
	"github.com/s21platform/livestream-service/internal/model"
)

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{repository: repo}
}

// Handler consumes settled-invoice events and records a sale per livestream
// invoice. Events tagged for other extensions are skipped; the insert is
// idempotent on payment hash, so redelivery is harmless.
func (h *Handler) Handler(ctx context.Context, in []byte) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	var event model.PaymentSettledEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal payment event: %v", err))
		return
	}

	if event.Extra.Tag != model.InvoiceTag {
		return
	}

	sale := model.Sale{
		ID:          uuid.New().String(),
		Track:       event.Extra.Track,
		PaymentHash: event.PaymentHash,
		Comment:     event.Extra.Comment,
		AmountSat:   event.AmountMsat / 1000,
		FeeSat:      event.Extra.Amount,
		PaidAt:      time.Now().UTC(),
	}

	if err := h.repository.AddSale(ctx, &sale); err != nil {
		logger.Error(fmt.Sprintf("failed to record sale: %v", err))
	}
}
