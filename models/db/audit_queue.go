package dbmodels

import (
	"time"

	"hr-admin-backend/models"
)

// AuditQueueEntry is the unit of work in the approval worklist. Its ID always
// equals the ID of the entity it points at, so a resubmission overwrites the
// existing slot instead of creating a duplicate. Entries are deleted on
// resolution, never marked resolved.
type AuditQueueEntry struct {
	ID              string             `gorm:"primaryKey" json:"id"`
	EntityType      models.EntityType  `gorm:"type:varchar(30);index"`
	EntityID        string             `gorm:"type:varchar(36)"`
	EntityName      string             `gorm:"type:varchar(255)"`
	Status          models.QueueStatus `gorm:"type:varchar(20);index"`
	SubmittedByID   string             `gorm:"type:varchar(36)"`
	SubmittedByName string             `gorm:"type:varchar(255)"`
	SubmittedAt     time.Time          `gorm:"index"`
	Payload         JSONMap            `gorm:"type:jsonb"` // snapshot of the proposed change, for display without joins
}
