package handler

import (
	"net/http"

	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TrackHandler serves the anonymous "track my application" page's API.
type TrackHandler struct {
	uc usecase.TrackingUsecase
}

// NewTrackHandler is the constructor for TrackHandler, injected by Fx.
func NewTrackHandler(uc usecase.TrackingUsecase) *TrackHandler {
	return &TrackHandler{uc: uc}
}

// Resolve handles GET /api/track?t=<token>.
func (h *TrackHandler) Resolve(c echo.Context) error {
	token := c.QueryParam("t")
	if token == "" {
		return domainerrors.ErrMissingTrackToken
	}

	status, err := h.uc.ResolveToken(c.Request().Context(), token)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, status)
}

type issueLinkRequest struct {
	CandidateID string `json:"candidate_id" validate:"required"`
}

type issueLinkResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// IssueLink handles POST /api/track/link, a dev-only route for producing
// tracking links without the notification dispatcher. Registered only when
// test routes are enabled.
func (h *TrackHandler) IssueLink(c echo.Context) error {
	var input issueLinkRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	token, err := h.uc.IssueLink(c.Request().Context(), input.CandidateID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, issueLinkResponse{
		Token: token,
		URL:   "/track?t=" + token,
	})
}
