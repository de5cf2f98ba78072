package invoice

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

// ErrPaymentNotFound means the engine knows no payment with that hash for
// the requested wallet. A hash minted for another wallet looks the same.
var ErrPaymentNotFound = errors.New("payment not found")

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Invoice.BaseURL,
		apiKey:  cfg.Invoice.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Invoice.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// CreateInvoice mints one Lightning invoice on the target wallet. Not
// idempotent: calling twice creates two distinct invoices.
func (c *Client) CreateInvoice(ctx context.Context, params model.InvoiceParams) (*model.Invoice, error) {
	jsonData, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/payments", bytes.NewBuffer(jsonData))
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

	var inv model.Invoice
	if err := json.NewDecoder(resp.Body).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if inv.PaymentHash == "" || inv.PaymentRequest == "" {
		return nil, fmt.Errorf("invoice engine returned an incomplete invoice")
	}

	return &inv, nil
}

// GetWalletPayment looks up a payment by hash, scoped to one wallet.
func (c *Client) GetWalletPayment(ctx context.Context, wallet, paymentHash string) (*model.Payment, error) {
	url := fmt.Sprintf("%s/api/v1/payments/%s/%s", c.baseURL, wallet, paymentHash)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPaymentNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var payment model.Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &payment, nil
}
