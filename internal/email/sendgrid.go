// Package email is the thin transactional-mail dispatcher S5 of the
// pipeline depends on: one send call, modeled on the SendGrid mail API.
// Template rendering, bounce handling, and IMAP/SMTP mechanics beyond
// this call are out of scope.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/platform/logger"
)

// Config configures a Client.
type Config struct {
	APIKey    string
	BaseURL   string
	FromEmail string
	FromName  string
	Timeout   time.Duration
}

// Client is a pipeline.EmailSender backed by a SendGrid-shaped HTTP API.
type Client struct {
	apiKey     string
	baseURL    string
	fromEmail  string
	fromName   string
	httpClient *http.Client
}

// NewClient builds a Client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.sendgrid.com/v3"
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type sendGridEmail struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridPersonalization struct {
	To      []sendGridEmail `json:"to"`
	Subject string          `json:"subject"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridEmail             `json:"from"`
	Content          []sendGridContent         `json:"content"`
}

// SendBookingConfirmation sends the post-booking confirmation email.
func (c *Client) SendBookingConfirmation(ctx context.Context, to string, booking domain.BookingRecord) error {
	subject := fmt.Sprintf("Your booking %s is confirmed", booking.AppReference)
	body := fmt.Sprintf("Hi, your booking %s is confirmed.", booking.AppReference)
	if booking.BookRoomDetails != nil {
		body = fmt.Sprintf("Hi, your booking %s (provider reference %s) is confirmed.",
			booking.AppReference, booking.BookRoomDetails.ProviderBookingID)
	}

	payload := sendGridRequest{
		Personalizations: []sendGridPersonalization{{To: []sendGridEmail{{Email: to}}, Subject: subject}},
		From:             sendGridEmail{Email: c.fromEmail, Name: c.fromName},
		Content:          []sendGridContent{{Type: "text/plain", Value: body}},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/mail/send", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	logger.Debugf("email: sending booking confirmation to %s for %s", to, booking.AppReference)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		logger.Errorf("email send failed: %d %s", resp.StatusCode, string(body))
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	return nil
}
