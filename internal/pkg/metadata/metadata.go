// Package metadata builds the LNURL-pay metadata for a track.
//
// Wallets hash the metadata string into the invoice description hash, so the
// same track state must produce byte-identical output at the quote step and
// at the invoice callback within one payment attempt.
package metadata

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/s21platform/livestream-service/internal/model"
)

const UnknownAuthor = "unknown author"

// Fullname is the human-readable track line used as the invoice memo.
// producerName may be empty when the producer record is missing; the
// request must not fail over that.
func Fullname(track *model.Track, producerName string) string {
	if producerName == "" {
		producerName = UnknownAuthor
	}
	return fmt.Sprintf("'%s', from %s.", track.Name, producerName)
}

// PayMetadata returns the serialized list-of-pairs metadata field: a single
// text/plain entry describing the track, the appreciation prompt, and the
// unlock price line when the track has a downloadable asset.
func PayMetadata(track *model.Track, producerName string) (string, error) {
	description := Fullname(track, producerName) + " Like this track? Send some sats in appreciation."

	if track.Downloadable() {
		description += fmt.Sprintf(
			"Send %d sats or more and you can download it.",
			int64(math.Round(float64(track.PriceMsat)/1000)),
		)
	}

	raw, err := json.Marshal([][]string{{"text/plain", description}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return string(raw), nil
}
