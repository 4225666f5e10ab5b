package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// EmailSender delivers transactional mail. The server treats delivery as an
// external collaborator and never implements it itself.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// PostmarkSender posts through the Postmark HTTP API. With no server token
// configured it logs the mail instead of sending, which keeps local
// development working without an account.
type PostmarkSender struct {
	ServerToken string
	FromEmail   string
	BaseURL     string
	HTTPClient  *http.Client
}

func NewPostmarkSender(serverToken, fromEmail string) *PostmarkSender {
	return &PostmarkSender{
		ServerToken: serverToken,
		FromEmail:   fromEmail,
		BaseURL:     "https://api.postmarkapp.com",
		HTTPClient:  http.DefaultClient,
	}
}

type postmarkEmail struct {
	From     string `json:"From"`
	To       string `json:"To"`
	Subject  string `json:"Subject"`
	HtmlBody string `json:"HtmlBody"`
}

func (p *PostmarkSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if p.ServerToken == "" {
		log.Printf("📭 Email sending disabled (no server token). To: %s, Subject: %s", to, subject)
		log.Printf("📭 Body: %s", htmlBody)
		return nil
	}

	payload, err := json.Marshal(postmarkEmail{
		From:     p.FromEmail,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/email", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Postmark-Server-Token", p.ServerToken)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}
