// Package mail sends notification emails through the Mailjet v3.1 send API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.mailjet.com/v3.1"

// Config holds Mailjet credentials and sender identity.
type Config struct {
	APIKey    string
	APISecret string
	FromEmail string
	FromName  string
}

// Mailer sends HTML emails. When credentials are not configured it logs a
// warning and drops the message instead of failing, so reminder jobs keep
// running in environments without a mail account.
type Mailer struct {
	client  *http.Client
	cfg     Config
	baseURL string
}

func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		client:  &http.Client{Timeout: 10 * time.Second},
		cfg:     cfg,
		baseURL: defaultBaseURL,
	}
}

type message struct {
	From     party   `json:"From"`
	To       []party `json:"To"`
	Subject  string  `json:"Subject"`
	HTMLPart string  `json:"HTMLPart"`
}

type party struct {
	Email string `json:"Email"`
	Name  string `json:"Name"`
}

type sendRequest struct {
	Messages []message `json:"Messages"`
}

// Send delivers one HTML email to the recipient.
func (m *Mailer) Send(ctx context.Context, toEmail, toName, subject, html string) error {
	if m.cfg.APIKey == "" || m.cfg.APISecret == "" {
		slog.Warn("mailjet credentials not configured, skipping email", "to", toEmail, "subject", subject)
		return nil
	}

	payload := sendRequest{
		Messages: []message{
			{
				From:     party{Email: m.cfg.FromEmail, Name: m.cfg.FromName},
				To:       []party{{Email: toEmail, Name: toName}},
				Subject:  subject,
				HTMLPart: html,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.SetBasicAuth(m.cfg.APIKey, m.cfg.APISecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mailjet send failed (%d): %s", resp.StatusCode, detail)
	}

	return nil
}
