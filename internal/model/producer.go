package model

type Producer struct {
	ID         string `db:"id" json:"id"`
	Livestream string `db:"livestream" json:"livestream"`
	User       string `db:"user" json:"user"`
	Wallet     string `db:"wallet" json:"wallet"`
	Name       string `db:"name" json:"name"`
}

// ProducerAccount is the user/wallet pair the accounts service provisions
// lazily for a producer referenced by name for the first time.
type ProducerAccount struct {
	User   string `json:"user"`
	Wallet string `json:"wallet"`
}

// KeyInfo is the resolution of a wallet API key presented in X-Api-Key.
type KeyInfo struct {
	Wallet string `json:"wallet"`
	Access string `json:"access"`
}
