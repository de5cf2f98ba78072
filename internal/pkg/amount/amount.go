package amount

import (
	"fmt"
	"math"

	"github.com/s21platform/livestream-service/internal/model"
)

// The advertised LNURL-pay sendable range. These are not safety clamps on the
// track price: wallets receive these exact numbers, so the formulas must not
// drift.
const (
	minSendableMsat = 100_000
	maxSendableMsat = 50_000_000
)

// ValidationError is a protocol-level rejection. Its reason goes to the
// paying wallet verbatim inside an LNURL error object.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SendableRange returns the min/max millisatoshi amounts advertised for a
// track. A zero price means donation-priced and falls back to the floor.
func SendableRange(track *model.Track) (int64, int64) {
	minMsat := int64(minSendableMsat)
	if track.PriceMsat != 0 && track.PriceMsat < minMsat {
		minMsat = track.PriceMsat
	}

	maxMsat := int64(maxSendableMsat)
	if track.PriceMsat*5 > maxMsat {
		maxMsat = track.PriceMsat * 5
	}

	return minMsat, maxMsat
}

// Validate checks a callback amount and comment against the advertised
// range. Checks run in a fixed order and the first failure wins; bounds are
// inclusive. Reasons report amounts in whole sats.
func Validate(track *model.Track, amountMsat int64, commentLen int) error {
	minMsat, maxMsat := SendableRange(track)

	if amountMsat < minMsat {
		return &ValidationError{
			Reason: fmt.Sprintf("Amount %d sats is smaller than minimum %d sats.", sats(amountMsat), sats(minMsat)),
		}
	}
	if amountMsat > maxMsat {
		return &ValidationError{
			Reason: fmt.Sprintf("Amount %d sats is greater than maximum %d sats.", sats(amountMsat), sats(maxMsat)),
		}
	}
	if commentLen > model.CommentAllowed {
		return &ValidationError{
			Reason: fmt.Sprintf("Got a comment with %d characters, but can only accept %d.", commentLen, model.CommentAllowed),
		}
	}

	return nil
}

// SplitFee returns the operator's cut of a received amount, in msat. Integer
// division is deliberate: the producer-facing remainder is floored, matching
// the invoice extra payload readers expect. The split is recorded on the
// invoice only; no transfer of the share is executed anywhere.
func SplitFee(amountMsat, feePct int64) int64 {
	return amountMsat - amountMsat*(100-feePct)/100
}

func sats(msat int64) int64 {
	return int64(math.Round(float64(msat) / 1000))
}
