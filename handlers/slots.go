package handlers

import (
	"errors"
	"net/http"

	"vetcare/models"
	"vetcare/services/slots"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotHandler serves slot generation, availability and mutation endpoints.
type SlotHandler struct {
	Service slots.SlotService
}

func NewSlotHandler(service slots.SlotService) *SlotHandler {
	return &SlotHandler{Service: service}
}

// GenerateSlotsHandler runs one generation pass; used by the external cron trigger.
func (h *SlotHandler) GenerateSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	result, err := h.Service.GenerateVeterinarianSlots(c.Request.Context())
	if err != nil {
		logger.Error("Slot generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.GenerationResult{
			Success: false,
			Message: "Slot generation failed",
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SlotHandler) CheckAvailabilityHandler(c *gin.Context) {
	vetID := c.Param("vetId")
	available, err := h.Service.HasAvailability(c.Request.Context(), vetID)
	if err != nil {
		respondError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasAvailability": available})
}

func (h *SlotHandler) SlotStatsHandler(c *gin.Context) {
	stats, err := h.Service.SlotStats(c.Request.Context(), c.Param("vetId"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err, "Failed to compute slot statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	found, err := h.Service.ListSlots(c.Request.Context(), c.Param("vetId"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		respondError(c, err, "Failed to list slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": found, "count": len(found)})
}

func (h *SlotHandler) BookableSlotsHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date is required")
		return
	}
	found, err := h.Service.BookableSlots(c.Request.Context(), c.Param("vetId"), date)
	if err != nil {
		respondError(c, err, "Failed to list bookable slots")
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": found, "count": len(found)})
}

// DeletePeriodHandler deletes the unbooked slots of one period.
func (h *SlotHandler) DeletePeriodHandler(c *gin.Context) {
	var req models.DeletePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if req.VetID == "" {
		req.VetID = callerVetID(c)
	}
	if !authorizeVet(c, req.VetID) {
		return
	}

	deleted, err := h.Service.DeletePeriod(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to delete period")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Period deleted",
		"deletedCount": deleted,
	})
}

// DeletePeriodsHandler deletes several periods at once. A batch in which every period
// failed answers 400 with the full error list; any success answers 200.
func (h *SlotHandler) DeletePeriodsHandler(c *gin.Context) {
	var req models.DeletePeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}
	if req.VetID == "" {
		req.VetID = callerVetID(c)
	}
	if !authorizeVet(c, req.VetID) {
		return
	}

	result, err := h.Service.DeletePeriodsBulk(c.Request.Context(), req)
	if errors.Is(err, slots.ErrAllPeriodsFailed) && result != nil {
		getLogger(c).Warn("Bulk period deletion rolled back", zap.Int("failed", len(result.Errors)))
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "No periods could be deleted",
			"success": false,
			"errors":  result.Errors,
			"summary": result.Summary,
		})
		return
	}
	if err != nil {
		respondError(c, err, "Failed to delete periods")
		return
	}
	c.JSON(http.StatusOK, result)
}

type slotIDsRequest struct {
	SlotIDs []string `json:"slotIds"`
}

// DeleteSlotsHandler deletes slots by id, scoped to the caller when authenticated.
func (h *SlotHandler) DeleteSlotsHandler(c *gin.Context) {
	var req slotIDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	result, err := h.Service.DeleteSlotsByID(c.Request.Context(), callerVetID(c), req.SlotIDs)
	if err != nil {
		respondError(c, err, "Failed to delete slots")
		return
	}
	c.JSON(http.StatusOK, result)
}

type slotStatusRequest struct {
	SlotIDs  []string `json:"slotIds"`
	Disabled *bool    `json:"disabled" binding:"required"`
}

func (h *SlotHandler) UpdateSlotStatusHandler(c *gin.Context) {
	var req slotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	modified, err := h.Service.SetSlotsDisabled(c.Request.Context(), callerVetID(c), req.SlotIDs, *req.Disabled)
	if err != nil {
		respondError(c, err, "Failed to update slot status")
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
