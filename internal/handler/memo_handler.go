package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vantagevc/dealflow-backend/internal/common"
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"github.com/vantagevc/dealflow-backend/internal/middleware"
	"github.com/vantagevc/dealflow-backend/internal/service"
)

// MemoHandler handles investment memo requests
type MemoHandler struct {
	service service.MemoService
}

// NewMemoHandler creates a new MemoHandler
func NewMemoHandler(service service.MemoService) *MemoHandler {
	return &MemoHandler{service: service}
}

// GetMemo handles GET /api/v1/memos/:deal_id
// @Summary Current memo
// @Description Returns the content of the memo's current version; null when no memo exists yet
// @Tags memos
// @Produce json
// @Param deal_id path int true "Deal ID"
// @Success 200 {object} common.APIResponse{data=domain.MemoResponse}
// @Security BearerAuth
// @Router /memos/{deal_id} [get]
func (h *MemoHandler) GetMemo(c *gin.Context) {
	dealID, ok := parseID(c, "deal_id")
	if !ok {
		return
	}

	memo, err := h.service.GetCurrent(dealID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load memo", err)
		return
	}

	// No memo yet: data is null, not an error
	if memo == nil {
		common.SuccessResponse(c, nil)
		return
	}

	common.SuccessResponse(c, memo)
}

// SaveMemo handles POST /api/v1/memos/:deal_id
// @Summary Save memo
// @Description Appends an immutable version of the document and moves the current pointer to it
// @Tags memos
// @Accept json
// @Produce json
// @Param deal_id path int true "Deal ID"
// @Param body body object true "Memo document"
// @Success 200 {object} common.APIResponse{data=domain.SaveMemoResponse}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /memos/{deal_id} [post]
func (h *MemoHandler) SaveMemo(c *gin.Context) {
	dealID, ok := parseID(c, "deal_id")
	if !ok {
		return
	}

	// The document is opaque to the store; any JSON object is accepted
	var content map[string]interface{}
	if err := c.ShouldBindJSON(&content); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid memo content", err)
		return
	}

	versionID, err := h.service.Save(dealID, content, middleware.CurrentActor(c))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDealNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Deal not found", nil)
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid memo content", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to save memo", err)
		}
		return
	}

	common.SuccessResponse(c, domain.SaveMemoResponse{
		Status:    "saved",
		VersionID: versionID,
	})
}

// GetMemoHistory handles GET /api/v1/memos/:deal_id/history
// @Summary Memo history
// @Description Returns the full version chain, newest first
// @Tags memos
// @Produce json
// @Param deal_id path int true "Deal ID"
// @Success 200 {object} common.APIResponse{data=[]domain.MemoVersion}
// @Security BearerAuth
// @Router /memos/{deal_id}/history [get]
func (h *MemoHandler) GetMemoHistory(c *gin.Context) {
	dealID, ok := parseID(c, "deal_id")
	if !ok {
		return
	}

	versions, err := h.service.History(dealID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load memo history", err)
		return
	}

	common.SuccessResponse(c, versions)
}
