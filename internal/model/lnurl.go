package model

// Wire records for the LNURL-pay exchange. Field names follow the LNURL-pay
// specification exactly; third-party wallets break on anything else.

const (
	PayRequestTag    = "payRequest"
	SuccessActionURL = "url"

	// CommentAllowed is fixed by the protocol surface, not configurable.
	CommentAllowed = 300
)

// LnurlPayResponse is the payRequest object returned by the quote endpoints.
type LnurlPayResponse struct {
	Tag            string `json:"tag"`
	Callback       string `json:"callback"`
	MinSendable    int64  `json:"minSendable"`
	MaxSendable    int64  `json:"maxSendable"`
	Metadata       string `json:"metadata"`
	CommentAllowed int64  `json:"commentAllowed"`
}

// LnurlPayActionResponse carries the invoice back to the paying wallet.
type LnurlPayActionResponse struct {
	PR            string         `json:"pr"`
	SuccessAction *SuccessAction `json:"successAction,omitempty"`
	Routes        []struct{}     `json:"routes"`
}

// SuccessAction is a LUD-09 url action: the wallet visits URL after paying.
type SuccessAction struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// LnurlErrorResponse is the protocol-level error object. It travels with
// HTTP 200: amount and comment violations are data, not transport errors.
type LnurlErrorResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func NewLnurlError(reason string) LnurlErrorResponse {
	return LnurlErrorResponse{Status: "ERROR", Reason: reason}
}
