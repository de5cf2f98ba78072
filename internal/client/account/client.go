package account

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/s21platform/livestream-service/internal/config"
	"github.com/s21platform/livestream-service/internal/model"
)

// ErrUnknownKey means the accounts service does not recognize the
// presented wallet API key.
var ErrUnknownKey = errors.New("unknown api key")

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Accounts.BaseURL,
		apiKey:  cfg.Accounts.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Accounts.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// ResolveKey exchanges a wallet API key for the wallet it belongs to and
// the access level it grants.
func (c *Client) ResolveKey(ctx context.Context, key string) (*model.KeyInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/keys/resolve", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Resolve-Key", key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnknownKey
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info model.KeyInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &info, nil
}

// CreateProducerAccount provisions the user/wallet pair for a producer
// referenced by name for the first time.
func (c *Client) CreateProducerAccount(ctx context.Context, name string) (*model.ProducerAccount, error) {
	payload := map[string]string{
		"wallet_name": "livestream: " + name,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/accounts", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var acc model.ProducerAccount
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if acc.User == "" || acc.Wallet == "" {
		return nil, fmt.Errorf("accounts service returned an incomplete account")
	}

	return &acc, nil
}
