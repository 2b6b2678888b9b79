package auditapimodels

import (
	"time"

	"github.com/pkg/errors"
	dbmodels "hr-admin-backend/models/db"
)

type QueueFilter struct {
	Status string `json:"status"` // defaults to pending
}

type QueueItemView struct {
	ID              string            `json:"id"`
	EntityType      string            `json:"entity_type"`
	EntityID        string            `json:"entity_id"`
	EntityName      string            `json:"entity_name,omitempty"`
	Status          string            `json:"status"`
	SubmittedByID   string            `json:"submitted_by_id"`
	SubmittedByName string            `json:"submitted_by_name"`
	SubmittedAt     time.Time         `json:"submitted_at"`
	Payload         map[string]string `json:"payload,omitempty"`
}

func QueueItemConvert(rec dbmodels.AuditQueueEntry) QueueItemView {
	return QueueItemView{
		ID:              rec.ID,
		EntityType:      string(rec.EntityType),
		EntityID:        rec.EntityID,
		EntityName:      rec.EntityName,
		Status:          string(rec.Status),
		SubmittedByID:   rec.SubmittedByID,
		SubmittedByName: rec.SubmittedByName,
		SubmittedAt:     rec.SubmittedAt,
		Payload:         rec.Payload,
	}
}

type ResolveData struct {
	Notes string `json:"notes"`
}

func (d ResolveData) Validate() error {
	if len(d.Notes) > 2000 {
		return errors.New("notes are too long")
	}
	return nil
}

type ResolveResult struct {
	Message string `json:"message"`
}
