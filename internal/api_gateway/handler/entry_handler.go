package handler

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cashflow-service/internal/api_gateway/service"
	"github.com/cashflow-service/internal/domain/entry"
)

// EntryHandler handles HTTP requests for manual cash entry operations
type EntryHandler struct {
	entryService service.EntryService
	logger       *slog.Logger
}

// NewEntryHandler creates a new manual cash entry handler
func NewEntryHandler(logger *slog.Logger, entryService service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		logger:       logger,
	}
}

// Create records a new manual cash entry, rejecting invalid attributes with 400
func (h *EntryHandler) Create(c *gin.Context) {
	var req CreateManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", "error", err)
		RespondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.entryService.CreateEntry(c.Request.Context(), service.CreateEntryParams{
		EntryDate:          req.EntryDate,
		Amount:             req.Amount,
		Type:               entry.Type(req.Type),
		Description:        req.Description,
		ProjectID:          req.ProjectID,
		CostCenterID:       req.CostCenterID,
		DocumentReferences: req.DocumentReferences,
	})
	if err != nil {
		if isEntryValidationError(err) {
			h.logger.Warn("Rejected manual cash entry", "error", err)
			RespondBadRequest(c, err.Error())
			return
		}
		h.logger.Error("Failed to create manual cash entry", "error", err)
		RespondInternalError(c)
		return
	}

	RespondCreated(c, mapEntryToResponse(created))
}

// GetByID retrieves a manual cash entry by its ID, returning 404 if not found
func (h *EntryHandler) GetByID(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid entry ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid entry ID")
		return
	}

	e, err := h.entryService.GetEntryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, entry.ErrEntryNotFound{}) {
			RespondNotFound(c, "Manual cash entry not found")
			return
		}
		h.logger.Error("Failed to get manual cash entry", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondOK(c, mapEntryToResponse(e))
}

// Delete removes a manual cash entry by its ID, returning 404 if not found
func (h *EntryHandler) Delete(c *gin.Context) {
	idParam := c.Param("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		h.logger.Error("Invalid entry ID", "id", idParam, "error", err)
		RespondBadRequest(c, "Invalid entry ID")
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), id); err != nil {
		if errors.Is(err, entry.ErrEntryNotFound{}) {
			RespondNotFound(c, "Manual cash entry not found")
			return
		}
		h.logger.Error("Failed to delete manual cash entry", "id", idParam, "error", err)
		RespondInternalError(c)
		return
	}

	RespondNoContent(c)
}

func isEntryValidationError(err error) bool {
	return errors.Is(err, entry.ErrNonPositiveAmount) ||
		errors.Is(err, entry.ErrBlankDescription) ||
		errors.Is(err, entry.ErrDescriptionTooLong) ||
		errors.Is(err, entry.ErrInvalidType) ||
		errors.Is(err, entry.ErrMissingEntryDate)
}
