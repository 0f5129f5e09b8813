package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WasteType classifies a waste-disposal entry.
type WasteType string

// Known waste types.
const (
	WastePaper      WasteType = "paper"
	WastePlastic    WasteType = "plastic"
	WasteGlass      WasteType = "glass"
	WasteMetal      WasteType = "metal"
	WasteOrganic    WasteType = "organic"
	WasteElectronic WasteType = "electronic"
	WasteOther      WasteType = "other"
)

// WasteTypes lists every known waste type, in display order.
var WasteTypes = []WasteType{
	WastePaper,
	WastePlastic,
	WasteGlass,
	WasteMetal,
	WasteOrganic,
	WasteElectronic,
	WasteOther,
}

// Valid reports whether w is a known waste type.
func (w WasteType) Valid() bool {
	for _, t := range WasteTypes {
		if w == t {
			return true
		}
	}
	return false
}

// WasteLog represents a waste-disposal entry. Team and author are set at
// creation and never reassigned by the default update policy.
type WasteLog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	WasteType   WasteType          `json:"wasteType" bson:"wasteType" example:"plastic"`
	WeightKg    float64            `json:"weightKg" bson:"weightKg" example:"12.5"`
	Description string             `json:"description,omitempty" bson:"description,omitempty" example:"Packaging from the loading dock"`
	TeamID      primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	CreatedByID primitive.ObjectID `json:"createdById" bson:"createdById" example:"507f1f77bcf86cd799439013"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// CreateWasteLogRequest is the payload for creating a waste log.
type CreateWasteLogRequest struct {
	WasteType   WasteType `json:"wasteType" binding:"required,wastetype" example:"plastic"`
	WeightKg    float64   `json:"weightKg" binding:"required,gt=0" example:"12.5"`
	Description string    `json:"description" binding:"omitempty,max=500" example:"Packaging from the loading dock"`
}

// UpdateWasteLogRequest is the payload for partially updating a waste log.
// Team and author are intentionally not patchable.
type UpdateWasteLogRequest struct {
	WasteType   *WasteType `json:"wasteType" binding:"omitempty,wastetype" example:"glass"`
	WeightKg    *float64   `json:"weightKg" binding:"omitempty,gt=0" example:"8.2"`
	Description *string    `json:"description" binding:"omitempty,max=500" example:"Corrected entry"`
}

// WasteLogListResponse is the response for listing waste logs.
type WasteLogListResponse struct {
	Items      []WasteLog `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// Pagination contains pagination metadata.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	TotalItems int `json:"totalItems" example:"42"`
	TotalPages int `json:"totalPages" example:"3"`
}

// NewPagination builds pagination metadata for a result page.
func NewPagination(page, limit, totalItems int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
