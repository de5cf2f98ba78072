package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	lnurlenc "github.com/fiatjaf/go-lnurl"
	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/livestream-service/internal/client/invoice"
	"github.com/s21platform/livestream-service/internal/config"
	api "github.com/s21platform/livestream-service/internal/generated"
	"github.com/s21platform/livestream-service/internal/model"
	"github.com/s21platform/livestream-service/internal/pkg/amount"
	"github.com/s21platform/livestream-service/internal/pkg/metadata"
	"github.com/s21platform/livestream-service/internal/pkg/tx"
)

type Handler struct {
	repository    DBRepo
	invoiceClient InvoiceClient
	accountClient AccountClient
	validator     Validator
	publicURL     string
}

func New(
	repo DBRepo,
	invoiceClient InvoiceClient,
	accountClient AccountClient,
	validator Validator,
	publicURL string,
) *Handler {
	return &Handler{
		repository:    repo,
		invoiceClient: invoiceClient,
		accountClient: accountClient,
		validator:     validator,
		publicURL:     publicURL,
	}
}

// ----------------------------- LNURL surface -----------------------------

func (h *Handler) LnurlLivestream(w http.ResponseWriter, r *http.Request, lsId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LnurlLivestream")

	ls, err := h.repository.GetLivestream(r.Context(), lsId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get livestream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get livestream: %v", err), http.StatusInternalServerError)
		return
	}
	if ls == nil {
		h.writeError(w, "livestream not found", http.StatusNotFound)
		return
	}

	if ls.CurrentTrack == nil {
		h.writeError(w, "this livestream is offline", http.StatusNotFound)
		return
	}

	track, err := h.repository.GetTrack(r.Context(), *ls.CurrentTrack)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get current track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get current track: %v", err), http.StatusInternalServerError)
		return
	}
	if track == nil {
		// the on-air pointer may dangle after a track delete
		h.writeError(w, "track not found", http.StatusNotFound)
		return
	}

	resp, err := h.payResponse(r.Context(), track)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to build pay response: %v", err))
		h.writeError(w, fmt.Sprintf("failed to build pay response: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, resp, http.StatusOK)
}

func (h *Handler) LnurlTrack(w http.ResponseWriter, r *http.Request, trackId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LnurlTrack")

	track, err := h.repository.GetTrack(r.Context(), trackId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get track: %v", err), http.StatusInternalServerError)
		return
	}
	if track == nil {
		h.writeError(w, "track not found", http.StatusNotFound)
		return
	}

	resp, err := h.payResponse(r.Context(), track)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to build pay response: %v", err))
		h.writeError(w, fmt.Sprintf("failed to build pay response: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, resp, http.StatusOK)
}

func (h *Handler) LnurlCallback(w http.ResponseWriter, r *http.Request, trackId string, params api.LnurlCallbackParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LnurlCallback")

	track, err := h.repository.GetTrack(r.Context(), trackId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get track: %v", err), http.StatusInternalServerError)
		return
	}
	if track == nil {
		h.writeError(w, "track not found", http.StatusNotFound)
		return
	}

	comment := ""
	if params.Comment != nil {
		comment = *params.Comment
	}

	// Protocol-level rejections travel as data with HTTP 200; wallets do not
	// read HTTP status codes for these.
	if err := amount.Validate(track, params.Amount, len([]rune(comment))); err != nil {
		h.writeJSON(w, model.NewLnurlError(err.Error()), http.StatusOK)
		return
	}

	ls, err := h.repository.GetLivestreamByTrack(r.Context(), trackId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get livestream by track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get livestream by track: %v", err), http.StatusInternalServerError)
		return
	}
	if ls == nil {
		// a stored track always has an owning livestream
		logger.Error(fmt.Sprintf("track %s has no owning livestream", trackId))
		h.writeError(w, "track has no owning livestream", http.StatusInternalServerError)
		return
	}

	producerName, err := h.producerName(r.Context(), track)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get producer: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get producer: %v", err), http.StatusInternalServerError)
		return
	}

	meta, err := metadata.PayMetadata(track, producerName)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to build metadata: %v", err))
		h.writeError(w, fmt.Sprintf("failed to build metadata: %v", err), http.StatusInternalServerError)
		return
	}

	operatorShareMsat := amount.SplitFee(params.Amount, ls.FeePct)

	inv, err := h.invoiceClient.CreateInvoice(r.Context(), model.InvoiceParams{
		Wallet:              ls.Wallet,
		AmountSat:           params.Amount / 1000,
		Memo:                metadata.Fullname(track, producerName),
		UnhashedDescription: meta,
		Extra: model.InvoiceExtra{
			Tag:     model.InvoiceTag,
			Track:   track.ID,
			Comment: comment,
			Amount:  operatorShareMsat / 1000,
		},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create invoice: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create invoice: %v", err), http.StatusInternalServerError)
		return
	}

	var successAction *model.SuccessAction
	if params.Amount >= track.PriceMsat {
		successAction = &model.SuccessAction{
			Tag:         model.SuccessActionURL,
			Description: "Download the track",
			URL:         fmt.Sprintf("%s/track/%s?p=%s", h.publicURL, track.ID, inv.PaymentHash),
		}
	}

	h.writeJSON(w, model.LnurlPayActionResponse{
		PR:            inv.PaymentRequest,
		SuccessAction: successAction,
		Routes:        []struct{}{},
	}, http.StatusOK)
}

func (h *Handler) RedeemDownload(w http.ResponseWriter, r *http.Request, trackId string, params api.RedeemDownloadParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RedeemDownload")

	track, err := h.repository.GetTrack(r.Context(), trackId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get track: %v", err), http.StatusInternalServerError)
		return
	}
	if track == nil {
		h.writeError(w, fmt.Sprintf("couldn't find the track %s", trackId), http.StatusNotFound)
		return
	}
	if !track.Downloadable() {
		h.writeError(w, "this track has no downloadable asset", http.StatusNotFound)
		return
	}

	ls, err := h.repository.GetLivestreamByTrack(r.Context(), trackId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get livestream by track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get livestream by track: %v", err), http.StatusInternalServerError)
		return
	}
	if ls == nil {
		logger.Error(fmt.Sprintf("track %s has no owning livestream", trackId))
		h.writeError(w, "track has no owning livestream", http.StatusInternalServerError)
		return
	}

	// The lookup is scoped to the livestream wallet: a payment hash minted
	// for another wallet is indistinguishable from an unknown one.
	payment, err := h.invoiceClient.GetWalletPayment(r.Context(), ls.Wallet, params.P)
	if err != nil {
		if errors.Is(err, invoice.ErrPaymentNotFound) {
			h.writeError(w, fmt.Sprintf("couldn't find the payment %s", params.P), http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to get payment: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get payment: %v", err), http.StatusInternalServerError)
		return
	}

	if payment.Pending {
		h.writeError(w, fmt.Sprintf("payment %s wasn't received yet, please try again in a minute", params.P), http.StatusPaymentRequired)
		return
	}

	http.Redirect(w, r, *track.DownloadURL, http.StatusFound)
}

// --------------------------- dashboard surface ---------------------------

func (h *Handler) GetLivestream(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetLivestream")

	wallet, ok := h.requireAccess(w, r, config.AccessRead)
	if !ok {
		return
	}

	var ls *model.Livestream
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		ls, err = h.getOrCreateLivestream(ctx, wallet)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get or create livestream: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get or create livestream: %v", err), http.StatusInternalServerError)
		return
	}

	tracks, err := h.repository.GetTracks(r.Context(), ls.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get tracks: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get tracks: %v", err), http.StatusInternalServerError)
		return
	}

	producers, err := h.repository.GetProducers(r.Context(), ls.ID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get producers: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get producers: %v", err), http.StatusInternalServerError)
		return
	}

	encoded, err := lnurlenc.LNURLEncode(fmt.Sprintf("%s/lnurl/%s", h.publicURL, ls.ID))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to encode lnurl: %v", err))
		h.writeError(w, fmt.Sprintf("failed to encode lnurl: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, model.LivestreamOverview{
		Lnurl:      encoded,
		Livestream: *ls,
		Tracks:     tracks,
		Producers:  producers,
	}, http.StatusOK)
}

func (h *Handler) AddTrack(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddTrack")

	wallet, ok := h.requireAccess(w, r, config.AccessAdmin)
	if !ok {
		return
	}

	var req api.CreateTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateTrack(&req); err != nil {
		logger.Error(fmt.Sprintf("track validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("track validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var trackID string
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		ls, err := h.getOrCreateLivestream(ctx, wallet)
		if err != nil {
			return fmt.Errorf("failed to get or create livestream: %v", err)
		}

		producer, err := h.resolveProducer(ctx, ls.ID, &req)
		if err != nil {
			return err
		}

		track := model.Track{
			ID:          uuid.New().String(),
			Livestream:  ls.ID,
			Producer:    producer.ID,
			Name:        req.Name,
			DownloadURL: req.DownloadUrl,
		}
		if req.PriceMsat != nil {
			track.PriceMsat = *req.PriceMsat
		}

		if err := h.repository.AddTrack(ctx, &track); err != nil {
			return fmt.Errorf("failed to add track: %v", err)
		}

		trackID = track.ID
		return nil
	})
	if err != nil {
		var notFound *notFoundError
		if errors.As(err, &notFound) {
			h.writeError(w, notFound.Error(), http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to complete track creation transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create track: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.TrackResponse{Id: trackID}, http.StatusOK)
}

func (h *Handler) UpdateTrack(w http.ResponseWriter, r *http.Request, trackId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateTrack")

	wallet, ok := h.requireAccess(w, r, config.AccessAdmin)
	if !ok {
		return
	}

	var req api.CreateTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateTrack(&req); err != nil {
		logger.Error(fmt.Sprintf("track validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("track validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		ls, err := h.getOrCreateLivestream(ctx, wallet)
		if err != nil {
			return fmt.Errorf("failed to get or create livestream: %v", err)
		}

		track, err := h.repository.GetTrack(ctx, trackId)
		if err != nil {
			return fmt.Errorf("failed to get track: %v", err)
		}
		if track == nil || track.Livestream != ls.ID {
			return &notFoundError{entity: "track", id: trackId}
		}

		producer, err := h.resolveProducer(ctx, ls.ID, &req)
		if err != nil {
			return err
		}

		track.Name = req.Name
		track.Producer = producer.ID
		if req.DownloadUrl != nil {
			track.DownloadURL = req.DownloadUrl
		}
		if req.PriceMsat != nil {
			track.PriceMsat = *req.PriceMsat
		}

		if err := h.repository.UpdateTrack(ctx, track); err != nil {
			return fmt.Errorf("failed to update track: %v", err)
		}

		return nil
	})
	if err != nil {
		var notFound *notFoundError
		if errors.As(err, &notFound) {
			h.writeError(w, notFound.Error(), http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to complete track update transaction: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update track: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.TrackResponse{Id: trackId}, http.StatusOK)
}

func (h *Handler) DeleteTrack(w http.ResponseWriter, r *http.Request, trackId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteTrack")

	wallet, ok := h.requireAccess(w, r, config.AccessAdmin)
	if !ok {
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		ls, err := h.getOrCreateLivestream(ctx, wallet)
		if err != nil {
			return fmt.Errorf("failed to get or create livestream: %v", err)
		}

		return h.repository.DeleteTrackFromLivestream(ctx, ls.ID, trackId)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to delete track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to delete track: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetCurrentTrack(w http.ResponseWriter, r *http.Request, trackId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetCurrentTrack")

	wallet, ok := h.requireAccess(w, r, config.AccessAdmin)
	if !ok {
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		ls, err := h.getOrCreateLivestream(ctx, wallet)
		if err != nil {
			return fmt.Errorf("failed to get or create livestream: %v", err)
		}

		track, err := h.repository.GetTrack(ctx, trackId)
		if err != nil {
			return fmt.Errorf("failed to get track: %v", err)
		}
		if track == nil || track.Livestream != ls.ID {
			// current_track must reference a track of this livestream
			return &notFoundError{entity: "track", id: trackId}
		}

		return h.repository.UpdateCurrentTrack(ctx, ls.ID, &track.ID)
	})
	if err != nil {
		var notFound *notFoundError
		if errors.As(err, &notFound) {
			h.writeError(w, notFound.Error(), http.StatusNotFound)
			return
		}
		logger.Error(fmt.Sprintf("failed to set current track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to set current track: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearCurrentTrack(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ClearCurrentTrack")

	wallet, ok := h.requireAccess(w, r, config.AccessAdmin)
	if !ok {
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		ls, err := h.getOrCreateLivestream(ctx, wallet)
		if err != nil {
			return fmt.Errorf("failed to get or create livestream: %v", err)
		}

		return h.repository.UpdateCurrentTrack(ctx, ls.ID, nil)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to clear current track: %v", err))
		h.writeError(w, fmt.Sprintf("failed to clear current track: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateFee(w http.ResponseWriter, r *http.Request, feePct int64) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateFee")

	wallet, ok := h.requireAccess(w, r, config.AccessAdmin)
	if !ok {
		return
	}

	if err := h.validator.ValidateFee(feePct); err != nil {
		logger.Error(fmt.Sprintf("fee validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("fee validation failed: %v", err), http.StatusBadRequest)
		return
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		ls, err := h.getOrCreateLivestream(ctx, wallet)
		if err != nil {
			return fmt.Errorf("failed to get or create livestream: %v", err)
		}

		return h.repository.UpdateLivestreamFee(ctx, ls.ID, feePct)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update fee: %v", err))
		h.writeError(w, fmt.Sprintf("failed to update fee: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- helpers -----------------------------

type notFoundError struct {
	entity string
	id     string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.entity, e.id)
}

// payResponse assembles the LNURL-pay payRequest for a track. The metadata
// built here must match the bytes sent to the invoice engine during the
// callback byte for byte.
func (h *Handler) payResponse(ctx context.Context, track *model.Track) (*model.LnurlPayResponse, error) {
	producerName, err := h.producerName(ctx, track)
	if err != nil {
		return nil, err
	}

	meta, err := metadata.PayMetadata(track, producerName)
	if err != nil {
		return nil, err
	}

	minSendable, maxSendable := amount.SendableRange(track)

	return &model.LnurlPayResponse{
		Tag:            model.PayRequestTag,
		Callback:       fmt.Sprintf("%s/lnurl/cb/%s", h.publicURL, track.ID),
		MinSendable:    minSendable,
		MaxSendable:    maxSendable,
		Metadata:       meta,
		CommentAllowed: model.CommentAllowed,
	}, nil
}

// producerName resolves the track's producer name. A missing producer
// record falls back to empty (rendered as "unknown author"), never an error.
func (h *Handler) producerName(ctx context.Context, track *model.Track) (string, error) {
	producer, err := h.repository.GetProducer(ctx, track.Producer)
	if err != nil {
		return "", fmt.Errorf("failed to get producer: %v", err)
	}
	if producer == nil {
		return "", nil
	}
	return producer.Name, nil
}

// getOrCreateLivestream implements the one-livestream-per-wallet rule as an
// explicit find-else-create; must run inside TxExecute.
func (h *Handler) getOrCreateLivestream(ctx context.Context, wallet string) (*model.Livestream, error) {
	ls, err := h.repository.GetLivestreamByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to get livestream by wallet: %v", err)
	}
	if ls != nil {
		return ls, nil
	}

	id := uuid.New().String()
	if err := h.repository.CreateLivestream(ctx, id, wallet); err != nil {
		return nil, fmt.Errorf("failed to create livestream: %v", err)
	}

	ls, err = h.repository.GetLivestream(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get created livestream: %v", err)
	}
	if ls == nil {
		return nil, fmt.Errorf("newly created livestream %s does not exist", id)
	}

	return ls, nil
}

// resolveProducer finds the producer a track request references: by id, or
// by case-insensitive name with lazy account/wallet provisioning.
func (h *Handler) resolveProducer(ctx context.Context, livestreamID string, req *api.CreateTrackRequest) (*model.Producer, error) {
	if req.ProducerId != nil && *req.ProducerId != "" {
		producer, err := h.repository.GetProducer(ctx, *req.ProducerId)
		if err != nil {
			return nil, fmt.Errorf("failed to get producer: %v", err)
		}
		if producer == nil {
			return nil, &notFoundError{entity: "producer", id: *req.ProducerId}
		}
		return producer, nil
	}

	name := *req.ProducerName

	producer, err := h.repository.GetProducerByName(ctx, livestreamID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get producer by name: %v", err)
	}
	if producer != nil {
		return producer, nil
	}

	acc, err := h.accountClient.CreateProducerAccount(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer account: %v", err)
	}

	producer = &model.Producer{
		ID:         uuid.New().String(),
		Livestream: livestreamID,
		User:       acc.User,
		Wallet:     acc.Wallet,
		Name:       name,
	}

	if err := h.repository.AddProducer(ctx, producer); err != nil {
		return nil, fmt.Errorf("failed to add producer: %v", err)
	}

	return producer, nil
}

func (h *Handler) requireAccess(w http.ResponseWriter, r *http.Request, level string) (string, bool) {
	wallet, ok := r.Context().Value(config.KeyWallet).(string)
	if !ok {
		h.writeError(w, "failed to get wallet", http.StatusInternalServerError)
		return "", false
	}

	access, ok := r.Context().Value(config.KeyAccess).(string)
	if !ok {
		h.writeError(w, "failed to get access level", http.StatusInternalServerError)
		return "", false
	}

	if level == config.AccessAdmin && access != config.AccessAdmin {
		h.writeError(w, "admin key required", http.StatusForbidden)
		return "", false
	}

	return wallet, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
