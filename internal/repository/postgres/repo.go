package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/livestream-service/internal/config"
	"github.com/s21platform/livestream-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) CreateLivestream(ctx context.Context, id, wallet string) error {
	query, args, err := sq.Insert("livestreams").
		Columns("id", "wallet", "fee_pct").
		Values(id, wallet, model.DefaultFeePct).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetLivestream(ctx context.Context, id string) (*model.Livestream, error) {
	query, args, err := sq.Select("id", "wallet", "fee_pct", "current_track").
		From("livestreams").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ls model.Livestream
	err = r.Chk(ctx).GetContext(ctx, &ls, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ls, nil
}

func (r *Repository) GetLivestreamByWallet(ctx context.Context, wallet string) (*model.Livestream, error) {
	query, args, err := sq.Select("id", "wallet", "fee_pct", "current_track").
		From("livestreams").
		Where(sq.Eq{"wallet": wallet}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ls model.Livestream
	err = r.Chk(ctx).GetContext(ctx, &ls, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ls, nil
}

// GetLivestreamByTrack resolves a track's owning livestream through the
// back-reference. A track without one is an invariant violation the caller
// decides how to report.
func (r *Repository) GetLivestreamByTrack(ctx context.Context, trackID string) (*model.Livestream, error) {
	query, args, err := sq.Select("l.id", "l.wallet", "l.fee_pct", "l.current_track").
		From("tracks t").
		Join("livestreams l ON l.id = t.livestream").
		Where(sq.Eq{"t.id": trackID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ls model.Livestream
	err = r.Chk(ctx).GetContext(ctx, &ls, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &ls, nil
}

func (r *Repository) UpdateCurrentTrack(ctx context.Context, livestreamID string, trackID *string) error {
	query, args, err := sq.Update("livestreams").
		Set("current_track", trackID).
		Where(sq.Eq{"id": livestreamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) UpdateLivestreamFee(ctx context.Context, livestreamID string, feePct int64) error {
	query, args, err := sq.Update("livestreams").
		Set("fee_pct", feePct).
		Where(sq.Eq{"id": livestreamID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) AddTrack(ctx context.Context, track *model.Track) error {
	query, args, err := sq.Insert("tracks").
		Columns("id", "livestream", "producer", "name", "download_url", "price_msat").
		Values(track.ID, track.Livestream, track.Producer, track.Name, track.DownloadURL, track.PriceMsat).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to add track: %v", err)
	}

	return nil
}

func (r *Repository) UpdateTrack(ctx context.Context, track *model.Track) error {
	query, args, err := sq.Update("tracks").
		Set("name", track.Name).
		Set("download_url", track.DownloadURL).
		Set("price_msat", track.PriceMsat).
		Set("producer", track.Producer).
		Where(sq.Eq{"livestream": track.Livestream, "id": track.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) GetTrack(ctx context.Context, id string) (*model.Track, error) {
	query, args, err := sq.Select("id", "livestream", "producer", "name", "download_url", "price_msat").
		From("tracks").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var track model.Track
	err = r.Chk(ctx).GetContext(ctx, &track, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &track, nil
}

func (r *Repository) GetTracks(ctx context.Context, livestreamID string) (model.TrackList, error) {
	query, args, err := sq.Select("id", "livestream", "producer", "name", "download_url", "price_msat").
		From("tracks").
		Where(sq.Eq{"livestream": livestreamID}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var tracks model.TrackList
	err = r.Chk(ctx).SelectContext(ctx, &tracks, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks: %v", err)
	}

	return tracks, nil
}

// DeleteTrackFromLivestream removes a track scoped to its livestream. The
// livestream's current_track pointer is left as is and may dangle.
func (r *Repository) DeleteTrackFromLivestream(ctx context.Context, livestreamID, trackID string) error {
	query, args, err := sq.Delete("tracks").
		Where(sq.Eq{"livestream": livestreamID, "id": trackID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

func (r *Repository) AddProducer(ctx context.Context, producer *model.Producer) error {
	query, args, err := sq.Insert("producers").
		Columns("id", "livestream", `"user"`, "wallet", "name").
		Values(producer.ID, producer.Livestream, producer.User, producer.Wallet, producer.Name).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to add producer: %v", err)
	}

	return nil
}

func (r *Repository) GetProducer(ctx context.Context, id string) (*model.Producer, error) {
	query, args, err := sq.Select("id", "livestream", `"user"`, "wallet", "name").
		From("producers").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var producer model.Producer
	err = r.Chk(ctx).GetContext(ctx, &producer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &producer, nil
}

// GetProducerByName looks a producer up case-insensitively within one
// livestream, so "DJ Test" and "dj test" resolve to the same record.
func (r *Repository) GetProducerByName(ctx context.Context, livestreamID, name string) (*model.Producer, error) {
	query, args, err := sq.Select("id", "livestream", `"user"`, "wallet", "name").
		From("producers").
		Where(sq.Eq{"livestream": livestreamID}).
		Where(sq.Expr("lower(name) = lower(?)", name)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var producer model.Producer
	err = r.Chk(ctx).GetContext(ctx, &producer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &producer, nil
}

func (r *Repository) GetProducers(ctx context.Context, livestreamID string) ([]model.Producer, error) {
	query, args, err := sq.Select("id", "livestream", `"user"`, "wallet", "name").
		From("producers").
		Where(sq.Eq{"livestream": livestreamID}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var producers []model.Producer
	err = r.Chk(ctx).SelectContext(ctx, &producers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get producers: %v", err)
	}

	return producers, nil
}

func (r *Repository) AddSale(ctx context.Context, sale *model.Sale) error {
	query, args, err := sq.Insert("sales").
		Columns("id", "track", "payment_hash", "comment", "amount_sat", "fee_sat", "paid_at").
		Values(sale.ID, sale.Track, sale.PaymentHash, sale.Comment, sale.AmountSat, sale.FeeSat, sale.PaidAt).
		Suffix("ON CONFLICT (payment_hash) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}
