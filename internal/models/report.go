package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStatus represents the processing status of an export report.
type ReportStatus string

const (
	// ReportPending indicates the export job is queued.
	ReportPending ReportStatus = "pending"
	// ReportProcessing indicates a worker is generating the file.
	ReportProcessing ReportStatus = "processing"
	// ReportReady indicates the file is uploaded and downloadable.
	ReportReady ReportStatus = "ready"
	// ReportFailed indicates generation failed (can be re-requested).
	ReportFailed ReportStatus = "failed"
)

// Report represents a CSV export of a team's waste logs.
type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TeamID      primitive.ObjectID `json:"teamId" bson:"teamId" example:"507f1f77bcf86cd799439012"`
	RequestedBy primitive.ObjectID `json:"requestedBy" bson:"requestedBy" example:"507f1f77bcf86cd799439013"`
	Status      ReportStatus       `json:"status" bson:"status" example:"ready"`
	FileKey     string             `json:"-" bson:"fileKey,omitempty"` // object storage key, not exposed
	DownloadURL string             `json:"downloadUrl,omitempty" bson:"-" example:"https://bucket.s3.amazonaws.com/reports/...?X-Amz-Signature=..."`
	EntryCount  int                `json:"entryCount" bson:"entryCount" example:"42"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:35:00Z"`
}

// CreateReportRequest is the payload for requesting a team export.
type CreateReportRequest struct {
	TeamID *string `json:"teamId" binding:"omitempty" example:"507f1f77bcf86cd799439012"`
}
