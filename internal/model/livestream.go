package model

const DefaultFeePct = 10

type Livestream struct {
	ID           string  `db:"id" json:"id"`
	Wallet       string  `db:"wallet" json:"wallet"`
	FeePct       int64   `db:"fee_pct" json:"fee_pct"`
	CurrentTrack *string `db:"current_track" json:"current_track,omitempty"`
}

// LivestreamOverview is the payload of GET /api/v1/livestream: the
// bech32-encoded LNURL of the livestream quote endpoint plus everything
// the dashboard needs to render.
type LivestreamOverview struct {
	Lnurl      string     `json:"lnurl"`
	Livestream Livestream `json:"livestream"`
	Tracks     TrackList  `json:"tracks"`
	Producers  []Producer `json:"producers"`
}
