package model

import "time"

const InvoiceTag = "livestream"

// InvoiceParams is what the invoice engine needs to mint one invoice.
// UnhashedDescription must be the exact metadata bytes the wallet hashed
// during the quote step.
type InvoiceParams struct {
	Wallet              string       `json:"wallet"`
	AmountSat           int64        `json:"amount"`
	Memo                string       `json:"memo"`
	UnhashedDescription string       `json:"unhashed_description"`
	Extra               InvoiceExtra `json:"extra"`
}

// InvoiceExtra is opaque bookkeeping attached to the invoice. Amount is the
// operator's share in whole sats; nothing in this service pays it out.
type InvoiceExtra struct {
	Tag     string `json:"tag"`
	Track   string `json:"track"`
	Comment string `json:"comment"`
	Amount  int64  `json:"amount"`
}

type Invoice struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
}

// Payment is the engine's view of an invoice scoped to one wallet.
type Payment struct {
	PaymentHash string       `json:"payment_hash"`
	Wallet      string       `json:"wallet"`
	Pending     bool         `json:"pending"`
	AmountMsat  int64        `json:"amount_msat"`
	Extra       InvoiceExtra `json:"extra"`
}

// PaymentSettledEvent is published by the invoice engine when an invoice
// settles. Events whose extra tag is not "livestream" belong to other
// extensions and are skipped.
type PaymentSettledEvent struct {
	PaymentHash string       `json:"payment_hash"`
	Wallet      string       `json:"wallet"`
	AmountMsat  int64        `json:"amount_msat"`
	Extra       InvoiceExtra `json:"extra"`
}

// Sale is the bookkeeping row the payment worker records per settled
// livestream invoice.
type Sale struct {
	ID          string    `db:"id"`
	Track       string    `db:"track"`
	PaymentHash string    `db:"payment_hash"`
	Comment     string    `db:"comment"`
	AmountSat   int64     `db:"amount_sat"`
	FeeSat      int64     `db:"fee_sat"`
	PaidAt      time.Time `db:"paid_at"`
}
