package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"server/internal/comments"
)

type donorCheckRequest struct {
	Email string `json:"email"`
}

// DonorCheck evaluates the comment gate for a visitor-supplied email. On
// donor-gated campaigns an unverified visitor gets neither read nor write;
// the presentation layer hides the whole thread.
func (a *App) DonorCheck(w http.ResponseWriter, r *http.Request) {
	campaign, err := a.Campaigns.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		a.domainError(w, err)
		return
	}

	var req donorCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	access, err := a.Gate.Evaluate(r.Context(), campaign, comments.ThreadFor(campaign), req.Email)
	if err != nil {
		a.domainError(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"state":             access.State,
		"can_comment":       access.CanComment,
		"can_view_comments": access.CanViewComments,
	})
}
