package queuestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-admin-backend/models"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Upsert(rec dbmodels.AuditQueueEntry) error
	GetByID(id string) (rec *dbmodels.AuditQueueEntry, err error)
	Delete(id string) error
	List(status models.QueueStatus) (list []dbmodels.AuditQueueEntry, err error)
	PendingCount() (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Upsert keeps at most one queue entry per entity: the row id equals the
// entity id, so a resubmission overwrites the stale entry in place.
func (i impl) Upsert(rec dbmodels.AuditQueueEntry) error {
	return i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&rec).
		Error
}

func (i impl) GetByID(id string) (*dbmodels.AuditQueueEntry, error) {
	rec := dbmodels.AuditQueueEntry{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.AuditQueueEntry{}).
		Error
}

func (i impl) List(status models.QueueStatus) (list []dbmodels.AuditQueueEntry, err error) {
	list = []dbmodels.AuditQueueEntry{}
	tx := i.db.Model(&dbmodels.AuditQueueEntry{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	err = tx.
		Order("submitted_at DESC").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) PendingCount() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.AuditQueueEntry{}).
		Where("status = ?", models.QueueStatusPending).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
