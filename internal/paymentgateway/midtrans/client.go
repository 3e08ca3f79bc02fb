// Package midtrans is a paymentgateway.Gateway implementation modeled on
// the Midtrans transaction-status API: server-key basic auth, sandbox and
// production base URLs, a flat status/order_id/payment_id JSON response.
package midtrans

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/paymentgateway"
	"github.com/hotelforge/aggregator/internal/platform/logger"
)

const (
	sandboxBaseURL    = "https://api.sandbox.midtrans.com/v2"
	productionBaseURL = "https://api.midtrans.com/v2"
)

// Config configures a Client.
type Config struct {
	ServerKey    string
	MerchantID   string
	IsProduction bool
	Timeout      time.Duration
}

// Client is a paymentgateway.Gateway backed by a Midtrans-shaped API.
type Client struct {
	config     Config
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a Client.
func NewClient(config Config) *Client {
	baseURL := sandboxBaseURL
	if config.IsProduction {
		baseURL = productionBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		baseURL:    baseURL,
	}
}

type statusResponse struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	GrossAmount       string `json:"gross_amount"`
	Currency          string `json:"currency"`
	SettlementTime    string `json:"settlement_time"`
}

func (c *Client) authHeader() string {
	token := base64.StdEncoding.EncodeToString([]byte(c.config.ServerKey + ":"))
	return "Basic " + token
}

func normalizeStatus(upstream string) domain.PaymentStatus {
	switch upstream {
	case "settlement", "capture":
		return domain.PaymentStatusPaid
	case "deny", "cancel", "failure":
		return domain.PaymentStatusFailed
	case "expire":
		return domain.PaymentStatusExpired
	default:
		return domain.PaymentStatusPending
	}
}

// GetTransactionStatus fetches the current transaction status for orderID.
func (c *Client) GetTransactionStatus(ctx context.Context, orderID string) (paymentgateway.TransactionStatus, error) {
	url := fmt.Sprintf("%s/%s/status", c.baseURL, orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return paymentgateway.TransactionStatus{}, fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader())
	req.Header.Set("Accept", "application/json")

	logger.Debugf("midtrans gateway: fetching status for order %s", orderID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return paymentgateway.TransactionStatus{}, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return paymentgateway.TransactionStatus{}, fmt.Errorf("failed to read status response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.Errorf("midtrans gateway status check failed: %d %s", resp.StatusCode, string(body))
		return paymentgateway.TransactionStatus{}, fmt.Errorf("status check failed with status %d", resp.StatusCode)
	}

	var wire statusResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return paymentgateway.TransactionStatus{}, fmt.Errorf("failed to decode status response: %w", err)
	}

	amount, _ := strconv.ParseFloat(wire.GrossAmount, 64)
	status := paymentgateway.TransactionStatus{
		OrderID:   wire.OrderID,
		PaymentID: wire.TransactionID,
		Status:    normalizeStatus(wire.TransactionStatus),
		Amount:    amount,
		Currency:  wire.Currency,
	}
	if wire.SettlementTime != "" {
		if t, err := time.Parse("2006-01-02 15:04:05", wire.SettlementTime); err == nil {
			status.PaidAt = &t
		}
	}
	return status, nil
}

var _ paymentgateway.Gateway = (*Client)(nil)
