package handlers

import (
	"net/http"

	"vetcare/models"
	"vetcare/services/booking"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// BookSlotHandler books an available slot and returns the created appointment.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	var req models.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	appt, err := h.Service.BookSlot(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to book slot")
		return
	}
	getLogger(c).Info("Appointment created", zap.String("appointmentID", appt.ID))
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Slot booked",
		"appointment": appt,
	})
}
