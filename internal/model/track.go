package model

type TrackList []Track

type Track struct {
	ID          string  `db:"id" json:"id"`
	Livestream  string  `db:"livestream" json:"livestream"`
	Producer    string  `db:"producer" json:"producer"`
	Name        string  `db:"name" json:"name"`
	DownloadURL *string `db:"download_url" json:"download_url,omitempty"`
	PriceMsat   int64   `db:"price_msat" json:"price_msat"`
}

// Downloadable reports whether the track has an asset to unlock.
func (t *Track) Downloadable() bool {
	return t.DownloadURL != nil && *t.DownloadURL != ""
}
