package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"bank_portal_echo/internal/cases"
)

const caseFailureMessage = "failed to create case. Please contact your admin"

// CaseHandler handles support case intake
type CaseHandler struct {
	service *cases.Service
	log     *zap.Logger
}

// NewCaseHandler creates a CaseHandler. service is nil when intake is not configured.
func NewCaseHandler(service *cases.Service, log *zap.Logger) *CaseHandler {
	return &CaseHandler{service: service, log: log}
}

// CreateCase opens a support case from a JSON {"name": "..."} body
func (h *CaseHandler) CreateCase(c echo.Context) error {
	if h.service == nil {
		return c.JSON(http.StatusServiceUnavailable, MessageResponse{Message: cases.ErrNotAvailable.Error()})
	}

	var req CaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: "invalid request body"})
	}

	sc, err := h.service.Create(c.Request().Context(), c.RealIP(), req.Name)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, MessageResponse{Message: "Case created successfully!", CaseID: sc.ID})
	case cases.IsValidation(err):
		return c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
	case errors.Is(err, cases.ErrThrottled):
		return c.JSON(http.StatusTooManyRequests, MessageResponse{Message: err.Error()})
	default:
		h.log.Error("Error while creating case", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, MessageResponse{Message: caseFailureMessage})
	}
}
