package models

import "time"

const AppointmentScheduled = "scheduled"

// Appointment is the record created when a pet parent books a slot.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	SlotID      string    `bson:"slotId" json:"slotId"`
	VetID       string    `bson:"vetId" json:"vetId"`
	PetParentID string    `bson:"petParentId" json:"petParentId"`
	PetID       string    `bson:"petId,omitempty" json:"petId,omitempty"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
	Status      string    `bson:"status" json:"status"`
	StartsAt    time.Time `bson:"startsAt" json:"startsAt"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BookSlotRequest is the input of the booking integration.
type BookSlotRequest struct {
	SlotID      string `json:"slotId" binding:"required"`
	PetParentID string `json:"petParentId" binding:"required"`
	PetID       string `json:"petId"`
	Reason      string `json:"reason"`
}
