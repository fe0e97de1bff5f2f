// Package mail sends transactional email through the Mailjet v3.1 send API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// MailjetClient sends email via the Mailjet REST API.
type MailjetClient struct {
	APIKey     string
	SecretKey  string
	FromEmail  string
	FromName   string
	BaseURL    string
	HTTPClient *http.Client
}

// NewMailjetClient returns a client that authenticates with the given API key
// pair and sends from the given address.
func NewMailjetClient(apiKey, secretKey, fromEmail, fromName string) *MailjetClient {
	return &MailjetClient{
		APIKey:     apiKey,
		SecretKey:  secretKey,
		FromEmail:  fromEmail,
		FromName:   fromName,
		BaseURL:    "https://api.mailjet.com/v3.1/send",
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

type mailjetParty struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type mailjetMessage struct {
	From     mailjetParty   `json:"From"`
	To       []mailjetParty `json:"To"`
	Subject  string         `json:"Subject"`
	HTMLPart string         `json:"HTMLPart"`
}

// Send delivers one HTML email to targetEmail. Callers treat delivery as
// best-effort; a failed send must never fail the business operation that
// triggered it.
func (c *MailjetClient) Send(ctx context.Context, targetEmail, subject, htmlBody string) error {
	if c.APIKey == "" || c.SecretKey == "" {
		return fmt.Errorf("mail: API keys not configured")
	}
	body := struct {
		Messages []mailjetMessage `json:"Messages"`
	}{
		Messages: []mailjetMessage{{
			From:     mailjetParty{Email: c.FromEmail, Name: c.FromName},
			To:       []mailjetParty{{Email: targetEmail}},
			Subject:  subject,
			HTMLPart: htmlBody,
		}},
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.APIKey, c.SecretKey)
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail: request failed status=%d body=%s", resp.StatusCode, string(b))
	}
	return nil
}
