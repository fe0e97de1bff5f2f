package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewMailjetClient_Defaults(t *testing.T) {
	client := NewMailjetClient("pub", "priv", "noreply@example.com", "Giveaway company")
	if client.BaseURL != "https://api.mailjet.com/v3.1/send" {
		t.Errorf("BaseURL = %q, want default", client.BaseURL)
	}
	if client.HTTPClient == nil {
		t.Fatal("HTTPClient should be set")
	}
	if client.HTTPClient.Timeout != defaultTimeout {
		t.Errorf("HTTPClient.Timeout = %v, want %v", client.HTTPClient.Timeout, defaultTimeout)
	}
}

func TestSend_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want %q", r.Method, http.MethodPost)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "pub" || pass != "priv" {
			t.Errorf("basic auth = %q/%q ok=%v", user, pass, ok)
		}

		var body struct {
			Messages []mailjetMessage `json:"Messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if len(body.Messages) != 1 {
			t.Fatalf("messages = %d, want 1", len(body.Messages))
		}
		msg := body.Messages[0]
		if msg.To[0].Email != "a@x.com" {
			t.Errorf("To = %q, want a@x.com", msg.To[0].Email)
		}
		if msg.Subject != "Verification code" {
			t.Errorf("Subject = %q", msg.Subject)
		}
		if msg.From.Email != "noreply@example.com" {
			t.Errorf("From = %q", msg.From.Email)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewMailjetClient("pub", "priv", "noreply@example.com", "Giveaway company")
	client.BaseURL = server.URL

	err := client.Send(context.Background(), "a@x.com", "Verification code", "<h1>hi</h1>")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
}

func TestSend_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewMailjetClient("pub", "priv", "noreply@example.com", "")
	client.BaseURL = server.URL

	if err := client.Send(context.Background(), "a@x.com", "s", "b"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestSend_MissingKeys(t *testing.T) {
	client := NewMailjetClient("", "", "noreply@example.com", "")
	if err := client.Send(context.Background(), "a@x.com", "s", "b"); err == nil {
		t.Fatal("expected error when API keys are not configured")
	}
}
