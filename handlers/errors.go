package handlers

import (
	"errors"
	"net/http"

	"vetcare/services/booking"
	"vetcare/services/slots"
	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto status codes. Anything unrecognised is a 500
// with a generic body; the cause is only logged.
func respondError(c *gin.Context, err error, message string) {
	var (
		validation *slots.ValidationError
		conflict   *slots.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request",
			"details": validation.Error(),
			"field":   validation.Field,
		})
	case errors.As(err, &conflict):
		body := gin.H{
			"message":          conflict.Message,
			"bookedSlotsCount": conflict.BookedCount,
		}
		if len(conflict.BookedIDs) > 0 {
			body["bookedSlotIds"] = conflict.BookedIDs
		}
		c.JSON(http.StatusConflict, body)
	case errors.Is(err, slots.ErrVetNotFound):
		utils.JSONError(c, http.StatusNotFound, "Veterinarian not found", "")
	case errors.Is(err, booking.ErrSlotNotFound):
		utils.JSONError(c, http.StatusNotFound, "Slot not found", "")
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusConflict, "Slot is no longer available", "")
	case errors.Is(err, booking.ErrInsideNoticePeriod):
		utils.JSONError(c, http.StatusConflict, "Slot is inside the veterinarian's notice period", "")
	default:
		getLogger(c).Error(message, zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message:   message,
			Details:   "the request could not be completed",
			RequestID: c.Writer.Header().Get("X-Request-ID"),
		})
	}
}
