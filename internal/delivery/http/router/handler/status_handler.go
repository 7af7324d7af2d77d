// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"tracker/internal/delivery/http/response"
	"tracker/internal/domain/entity"
	domainerrors "tracker/internal/domain/errors"
	"tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StatusHandler holds dependencies for the recruiter-facing pipeline routes.
type StatusHandler struct {
	uc usecase.StatusUsecase
}

// NewStatusHandler is the constructor for StatusHandler, injected by Fx.
func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

type candidateListResponse struct {
	Candidates []entity.Projection `json:"candidates"`
}

// ListAll handles GET /api/status/all.
func (h *StatusHandler) ListAll(c echo.Context) error {
	projections, err := h.uc.ListCandidates(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, candidateListResponse{Candidates: projections})
}

// Get handles GET /api/status/:candidateId.
func (h *StatusHandler) Get(c echo.Context) error {
	status, err := h.uc.GetCandidate(c.Request().Context(), c.Param("candidateId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, status)
}

type updateStageRequest struct {
	Stage string `json:"stage"`
}

// UpdateStage handles POST /api/status/:candidateId, the dashboard's
// drag-and-drop mutation.
func (h *StatusHandler) UpdateStage(c echo.Context) error {
	var input updateStageRequest
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrMissingStage
	}

	if err := h.uc.UpdateStage(c.Request().Context(), c.Param("candidateId"), input.Stage); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c)
}
