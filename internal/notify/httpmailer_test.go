package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPMailerSendsResendShapedRequest(t *testing.T) {
	var got mailSendRequest
	var auth, contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		if r.URL.Path != "/emails" {
			t.Errorf("path = %s, want /emails", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	mailer, err := NewHTTPMailer(HTTPMailerOptions{
		APIKey:      "re_test_key",
		BaseURL:     srv.URL,
		FromAddress: "updates@example.org",
		FromName:    "Campaign Updates",
		HTTPClient:  srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewHTTPMailer: %v", err)
	}

	msg := Message{To: "jane@example.com", Subject: "Funds update", HTMLBody: "<p>hi</p>"}
	if err := mailer.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if auth != "Bearer re_test_key" {
		t.Fatalf("Authorization = %q", auth)
	}
	if contentType != "application/json" {
		t.Fatalf("Content-Type = %q", contentType)
	}
	if got.From != "Campaign Updates <updates@example.org>" {
		t.Fatalf("from = %q", got.From)
	}
	if len(got.To) != 1 || got.To[0] != "jane@example.com" {
		t.Fatalf("to = %#v", got.To)
	}
	if got.Subject != "Funds update" || got.HTML != "<p>hi</p>" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestHTTPMailerNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	mailer, err := NewHTTPMailer(HTTPMailerOptions{
		APIKey:      "bad",
		BaseURL:     srv.URL,
		FromAddress: "updates@example.org",
		HTTPClient:  srv.Client(),
	})
	if err != nil {
		t.Fatalf("NewHTTPMailer: %v", err)
	}

	err = mailer.Send(context.Background(), Message{To: "jane@example.com"})
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}

func TestNewHTTPMailerRequiresCredentials(t *testing.T) {
	if _, err := NewHTTPMailer(HTTPMailerOptions{FromAddress: "updates@example.org"}); err == nil {
		t.Fatal("expected error when api key is missing")
	}
	if _, err := NewHTTPMailer(HTTPMailerOptions{APIKey: "re_test"}); err == nil {
		t.Fatal("expected error when from address is missing")
	}
}

func TestDisabledMailer(t *testing.T) {
	var m Mailer = Disabled{}
	if m.Enabled() {
		t.Fatal("Disabled must report not enabled")
	}
}
