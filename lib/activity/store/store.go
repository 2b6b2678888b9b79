package activitystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	activityapimodels "hr-admin-backend/models/api/activity"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Activity) error
	List(filter activityapimodels.ActivityFilter) (list []dbmodels.Activity, err error)
	ListCount(filter activityapimodels.ActivityFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Activity) error {
	return i.db.
		Create(&rec).
		Error
}

func (i impl) listQuery(filter activityapimodels.ActivityFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Activity{})
	if filter.ActorID != "" {
		tx = tx.Where("actor_id = ?", filter.ActorID)
	}
	if filter.EntityType != "" {
		tx = tx.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Query != "" {
		tx = tx.Where("entity_name ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.StartDate != "" {
		tx = tx.Where("created_at >= ?::date", filter.StartDate)
	}
	if filter.EndDate != "" {
		tx = tx.Where("created_at < ?::date + 1", filter.EndDate)
	}
	return tx
}

func (i impl) ListCount(filter activityapimodels.ActivityFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter activityapimodels.ActivityFilter) (list []dbmodels.Activity, err error) {
	list = []dbmodels.Activity{}
	page, limit := filter.GetPage()
	err = i.listQuery(filter).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
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
