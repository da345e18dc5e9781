package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const sendgridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// sendgridClient is the concrete Sender backed by the SendGrid v3 mail API.
type sendgridClient struct {
	apiKey     string
	fromAddr   string // verified sender, e.g. "quotes@organiknation.ca"
	fromName   string // e.g. "Organik Nation"
	endpoint   string
	httpClient *http.Client
}

// NewSendGridClient returns a Sender that delivers email via SendGrid.
func NewSendGridClient(apiKey, fromAddr, fromName string) Sender {
	return &sendgridClient{
		apiKey:   apiKey,
		fromAddr: fromAddr,
		fromName: fromName,
		endpoint: sendgridEndpoint,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ─── SENDGRID API SHAPES ─────────────────────────────────────────────────────

type sendgridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendgridPersonalization struct {
	To []sendgridAddress `json:"to"`
}

type sendgridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendgridRequest struct {
	Personalizations []sendgridPersonalization `json:"personalizations"`
	From             sendgridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendgridContent         `json:"content"`
}

type sendgridErrorResponse struct {
	Errors []struct {
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"errors"`
}

// ─── SENDER IMPLEMENTATION ───────────────────────────────────────────────────

// Send delivers msg via the v3 mail endpoint. SendGrid answers 202 with an
// empty body on success, so the body is only decoded on non-2xx statuses.
func (c *sendgridClient) Send(ctx context.Context, msg Message) error {
	reqBody := sendgridRequest{
		Personalizations: []sendgridPersonalization{
			{To: []sendgridAddress{{Email: msg.To}}},
		},
		From:    sendgridAddress{Email: c.fromAddr, Name: c.fromName},
		Subject: msg.Subject,
		Content: []sendgridContent{{Type: "text/html", Value: msg.HTML}},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("email: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("email: read response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var parsed sendgridErrorResponse
	if err := json.Unmarshal(respBytes, &parsed); err == nil && len(parsed.Errors) > 0 {
		first := parsed.Errors[0]
		if first.Field != "" {
			return fmt.Errorf("email: SendGrid error (status %d, field %s): %s",
				resp.StatusCode, first.Field, first.Message)
		}
		return fmt.Errorf("email: SendGrid error (status %d): %s",
			resp.StatusCode, first.Message)
	}

	return fmt.Errorf("email: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
}
