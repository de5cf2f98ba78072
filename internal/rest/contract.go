//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	api "github.com/s21platform/livestream-service/internal/generated"
	"github.com/s21platform/livestream-service/internal/model"
)

type DBRepo interface {
	CreateLivestream(ctx context.Context, id, wallet string) error
	GetLivestream(ctx context.Context, id string) (*model.Livestream, error)
	GetLivestreamByWallet(ctx context.Context, wallet string) (*model.Livestream, error)
	GetLivestreamByTrack(ctx context.Context, trackID string) (*model.Livestream, error)
	UpdateCurrentTrack(ctx context.Context, livestreamID string, trackID *string) error
	UpdateLivestreamFee(ctx context.Context, livestreamID string, feePct int64) error
	AddTrack(ctx context.Context, track *model.Track) error
	UpdateTrack(ctx context.Context, track *model.Track) error
	GetTrack(ctx context.Context, id string) (*model.Track, error)
	GetTracks(ctx context.Context, livestreamID string) (model.TrackList, error)
	DeleteTrackFromLivestream(ctx context.Context, livestreamID, trackID string) error
	AddProducer(ctx context.Context, producer *model.Producer) error
	GetProducer(ctx context.Context, id string) (*model.Producer, error)
	GetProducerByName(ctx context.Context, livestreamID, name string) (*model.Producer, error)
	GetProducers(ctx context.Context, livestreamID string) ([]model.Producer, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type InvoiceClient interface {
	CreateInvoice(ctx context.Context, params model.InvoiceParams) (*model.Invoice, error)
	GetWalletPayment(ctx context.Context, wallet, paymentHash string) (*model.Payment, error)
}

type AccountClient interface {
	CreateProducerAccount(ctx context.Context, name string) (*model.ProducerAccount, error)
}

type Validator interface {
	ValidateCreateTrack(req *api.CreateTrackRequest) error
	ValidateFee(feePct int64) error
}
