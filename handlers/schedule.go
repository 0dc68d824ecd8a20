package handlers

import (
	"net/http"

	"vetcare/services/vets"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	Service vets.ScheduleService
}

func NewScheduleHandler(service vets.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: service}
}

func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	vet, err := h.Service.GetSchedule(c.Request.Context(), c.Param("vetId"))
	if err != nil {
		respondError(c, err, "Failed to load schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vetId":        vet.ID,
		"timezone":     vet.TimezoneName(),
		"noticePeriod": vet.NoticePeriod,
		"schedule":     vet.Schedule,
	})
}

// UpdateScheduleHandler replaces the caller's schedule. Existing slots are left as they are.
func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	vetID := c.Param("vetId")
	if !authorizeVet(c, vetID) {
		return
	}

	var req vets.ScheduleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	vet, err := h.Service.UpdateSchedule(c.Request.Context(), vetID, req)
	if err != nil {
		respondError(c, err, "Failed to update schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Schedule updated",
		"vetId":        vet.ID,
		"timezone":     vet.Timezone,
		"noticePeriod": vet.NoticePeriod,
		"schedule":     vet.Schedule,
	})
}
