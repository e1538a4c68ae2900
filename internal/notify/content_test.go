package notify

import (
	"strings"
	"testing"

	"server/internal/domain"
)

func TestEventSubjectPerKind(t *testing.T) {
	e := Event{CampaignTitle: "Clean Water Drive"}

	e.Kind = KindDonationThanks
	if got := e.Subject(); got != "Thank you for supporting Clean Water Drive" {
		t.Fatalf("donation subject = %q", got)
	}
	e.Kind = KindExpensePosted
	if got := e.Subject(); got != "Funds update for Clean Water Drive" {
		t.Fatalf("expense subject = %q", got)
	}
	e.Kind = KindCommentPosted
	if got := e.Subject(); got != "New comment on Clean Water Drive" {
		t.Fatalf("comment subject = %q", got)
	}
}

func TestHTMLBodyEscapesUntrustedContent(t *testing.T) {
	e := Event{
		Kind:          KindCommentPosted,
		CampaignTitle: "Clean Water Drive",
		Actor:         "Mallory",
		Detail:        `<script>alert("x")</script>`,
	}
	body := e.HTMLBody(domain.Subscriber{Name: "<b>Jane</b>", Email: "jane@example.com"})

	if strings.Contains(body, "<script>") || strings.Contains(body, "<b>Jane</b>") {
		t.Fatalf("body must escape donor-supplied content: %s", body)
	}
	if !strings.Contains(body, "Mallory commented on Clean Water Drive.") {
		t.Fatalf("body missing lead line: %s", body)
	}
}

func TestHTMLBodyFallsBackToGenericGreeting(t *testing.T) {
	e := Event{Kind: KindExpensePosted, CampaignTitle: "Clean Water Drive", Amount: "$500.00"}
	body := e.HTMLBody(domain.Subscriber{Email: "anon@example.com"})

	if !strings.Contains(body, "Hi there,") {
		t.Fatalf("expected generic greeting for nameless subscriber: %s", body)
	}
	if !strings.Contains(body, "An expense of $500.00 was posted") {
		t.Fatalf("expected expense lead: %s", body)
	}
}
