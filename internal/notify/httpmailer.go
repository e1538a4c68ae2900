package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const mailerDefaultTimeout = 15 * time.Second

// HTTPMailerOptions configures the outbound mail provider client.
type HTTPMailerOptions struct {
	APIKey      string
	BaseURL     string
	FromAddress string
	FromName    string
	HTTPClient  *http.Client
}

// HTTPMailer sends through a JSON mail API (Resend-compatible shape).
type HTTPMailer struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
}

func NewHTTPMailer(opts HTTPMailerOptions) (*HTTPMailer, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("mail api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	from := strings.TrimSpace(opts.FromAddress)
	if from == "" {
		return nil, errors.New("mail from address is required")
	}
	if name := strings.TrimSpace(opts.FromName); name != "" {
		from = fmt.Sprintf("%s <%s>", name, from)
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: mailerDefaultTimeout}
	}
	return &HTTPMailer{
		apiKey:  strings.TrimSpace(opts.APIKey),
		baseURL: baseURL,
		from:    from,
		client:  client,
	}, nil
}

type mailSendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *HTTPMailer) Send(ctx context.Context, msg Message) error {
	payload := mailSendRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/emails", m.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider status %d", resp.StatusCode)
	}
	return nil
}

func (m *HTTPMailer) Enabled() bool { return true }

var _ Mailer = (*HTTPMailer)(nil)
