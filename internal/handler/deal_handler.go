package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vantagevc/dealflow-backend/internal/common"
	"github.com/vantagevc/dealflow-backend/internal/domain"
	"github.com/vantagevc/dealflow-backend/internal/middleware"
	"github.com/vantagevc/dealflow-backend/internal/service"
)

// DealHandler handles deal pipeline requests
type DealHandler struct {
	service service.DealService
}

// NewDealHandler creates a new DealHandler
func NewDealHandler(service service.DealService) *DealHandler {
	return &DealHandler{service: service}
}

// CreateDeal handles POST /api/v1/deals
// @Summary Create deal
// @Description Creates a deal owned by the caller and logs a "created" activity
// @Tags deals
// @Accept json
// @Produce json
// @Param body body domain.CreateDealRequest true "Deal"
// @Success 201 {object} common.APIResponse{data=domain.Deal}
// @Failure 400 {object} common.APIResponse
// @Security BearerAuth
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req domain.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	deal, err := h.service.Create(&req, middleware.CurrentActor(c))
	if err != nil {
		if errors.Is(err, common.ErrInvalidStage) {
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid deal stage", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create deal", err)
		return
	}

	common.CreatedResponse(c, deal)
}

// ListDeals handles GET /api/v1/deals
// @Summary List deals
// @Tags deals
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.Deal}
// @Security BearerAuth
// @Router /deals [get]
func (h *DealHandler) ListDeals(c *gin.Context) {
	deals, err := h.service.List()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list deals", err)
		return
	}

	common.SuccessResponse(c, deals)
}

// GetDeal handles GET /api/v1/deals/:id
// @Summary Get deal
// @Tags deals
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} common.APIResponse{data=domain.Deal}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	deal, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, common.ErrDealNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Deal not found", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load deal", err)
		return
	}

	common.SuccessResponse(c, deal)
}

// UpdateDeal handles PATCH /api/v1/deals/:id
// @Summary Update deal
// @Description Partial update; a stage change also appends a "stage_change" activity
// @Tags deals
// @Accept json
// @Produce json
// @Param id path int true "Deal ID"
// @Param body body domain.UpdateDealRequest true "Patch"
// @Success 200 {object} common.APIResponse{data=domain.Deal}
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /deals/{id} [patch]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var patch domain.UpdateDealRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	deal, err := h.service.Update(id, &patch, middleware.CurrentActor(c))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrDealNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Deal not found", nil)
		case errors.Is(err, common.ErrInvalidStage):
			common.ErrorResponse(c, http.StatusBadRequest, "Invalid deal stage", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update deal", err)
		}
		return
	}

	common.SuccessResponse(c, deal)
}

// DeleteDeal handles DELETE /api/v1/deals/:id
// @Summary Delete deal
// @Description Admin only; removes the deal and its activities and memo history
// @Tags deals
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := h.service.Delete(id, middleware.CurrentActor(c))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "Only admins can delete deals", nil)
		case errors.Is(err, common.ErrDealNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Deal not found", nil)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete deal", err)
		}
		return
	}

	common.SuccessResponse(c, gin.H{"ok": true})
}

// ListActivities handles GET /api/v1/deals/:id/activities
// @Summary Deal activity log
// @Description Returns the deal's activities, newest first
// @Tags deals
// @Produce json
// @Param id path int true "Deal ID"
// @Success 200 {object} common.APIResponse{data=[]domain.Activity}
// @Security BearerAuth
// @Router /deals/{id}/activities [get]
func (h *DealHandler) ListActivities(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	activities, err := h.service.ListActivities(id)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list activities", err)
		return
	}

	common.SuccessResponse(c, activities)
}

// parseID parses a uint path parameter, writing a 400 response on failure
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid id", err)
		return 0, false
	}
	return uint(id), true
}
