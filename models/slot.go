package models

import "time"

// SlotStatus is the lifecycle state of an appointment slot.
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
	SlotDisabled  SlotStatus = "disabled"
)

// SlotDurationMinutes is the fixed length of every generated slot.
const SlotDurationMinutes = 30

// AppointmentSlot is a single bookable window of one veterinarian.
// Date is the UTC instant of local midnight of the slot's calendar day in Timezone;
// ShiftDate is the schedule day that produced the slot, which differs from Date for
// the after-midnight part of an overnight shift. StartsAt is the absolute start.
type AppointmentSlot struct {
	ID            string     `bson:"id" json:"id"`
	VetID         string     `bson:"vetId" json:"vetId"`
	Date          time.Time  `bson:"date" json:"date"`
	ShiftDate     time.Time  `bson:"shiftDate" json:"shiftDate"`
	StartsAt      time.Time  `bson:"startsAt" json:"startsAt"`
	StartTime     ClockTime  `bson:"startTime" json:"startTime"`
	EndTime       ClockTime  `bson:"endTime" json:"endTime"`
	Timezone      string     `bson:"timezone" json:"timezone"`
	Status        SlotStatus `bson:"status" json:"status"`
	AppointmentID string     `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// DurationMinutes is EndTime - StartTime; an end at or before the start wraps past midnight.
func (s AppointmentSlot) DurationMinutes() int {
	d := s.EndTime.Minutes() - s.StartTime.Minutes()
	if d <= 0 {
		d += MinutesPerDay
	}
	return d
}

// Deletable reports whether bulk paths may remove or toggle the slot.
func (s AppointmentSlot) Deletable() bool {
	return s.Status == SlotAvailable || s.Status == SlotDisabled
}

// SlotStats summarises a veterinarian's slots over a date range.
type SlotStats struct {
	AvailableSlots int     `json:"availableSlots"`
	BookedSlots    int     `json:"bookedSlots"`
	DisabledSlots  int     `json:"disabledSlots"`
	TotalPeriods   int     `json:"totalPeriods"`
	TotalSlotHours float64 `json:"totalSlotHours"`
}

// GenerationResult is the outcome of one slot generation run.
type GenerationResult struct {
	Success      bool   `json:"success"`
	SlotsCreated int    `json:"slotsCreated"`
	SlotsSkipped int    `json:"slotsSkipped"`
	Message      string `json:"message"`
}
