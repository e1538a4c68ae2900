package notify

import (
	"fmt"
	"html/template"
	"strings"

	"server/internal/domain"
)

// Kind names a notification type.
type Kind string

const (
	KindDonationThanks Kind = "donation-thank-you"
	KindExpensePosted  Kind = "expense-posted"
	KindCommentPosted  Kind = "comment-posted"
)

// Event carries the rendered-content inputs for one triggering occurrence.
// Amount is already formatted for display; ledger math never passes through
// here.
type Event struct {
	Kind          Kind   `json:"kind"`
	CampaignTitle string `json:"campaign_title"`
	CampaignSlug  string `json:"campaign_slug"`
	Actor         string `json:"actor,omitempty"`
	Detail        string `json:"detail,omitempty"`
	Amount        string `json:"amount,omitempty"`
}

// Subject is the same for every recipient of a batch.
func (e Event) Subject() string {
	switch e.Kind {
	case KindDonationThanks:
		return fmt.Sprintf("Thank you for supporting %s", e.CampaignTitle)
	case KindExpensePosted:
		return fmt.Sprintf("Funds update for %s", e.CampaignTitle)
	case KindCommentPosted:
		return fmt.Sprintf("New comment on %s", e.CampaignTitle)
	default:
		return fmt.Sprintf("Update on %s", e.CampaignTitle)
	}
}

var bodyTmpl = template.Must(template.New("notification").Parse(`<p>Hi {{.Name}},</p>
<p>{{.Lead}}</p>
{{if .Detail}}<p>{{.Detail}}</p>{{end}}
<p>You can review the full transparency report on the campaign page for {{.CampaignTitle}}.</p>
<p>You are receiving this because you opted into updates.</p>`))

type bodyData struct {
	Name          string
	Lead          string
	Detail        string
	CampaignTitle string
}

// HTMLBody renders the per-recipient body. Content is escaped by
// html/template; donor-supplied names and messages are never trusted as HTML.
func (e Event) HTMLBody(sub domain.Subscriber) string {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		name = "there"
	}
	data := bodyData{
		Name:          name,
		Detail:        e.Detail,
		CampaignTitle: e.CampaignTitle,
	}
	switch e.Kind {
	case KindDonationThanks:
		data.Lead = fmt.Sprintf("Your donation of %s to %s was received. Thank you!", e.Amount, e.CampaignTitle)
	case KindExpensePosted:
		data.Lead = fmt.Sprintf("An expense of %s was posted to %s.", e.Amount, e.CampaignTitle)
	case KindCommentPosted:
		data.Lead = fmt.Sprintf("%s commented on %s.", e.Actor, e.CampaignTitle)
	default:
		data.Lead = fmt.Sprintf("There is news on %s.", e.CampaignTitle)
	}

	var b strings.Builder
	if err := bodyTmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("<p>%s</p>", template.HTMLEscapeString(data.Lead))
	}
	return b.String()
}
