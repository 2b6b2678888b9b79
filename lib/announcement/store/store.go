package announcementstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Announcement) (id string, err error)
	Delete(id string) error
	List() (list []dbmodels.Announcement, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Announcement) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Announcement{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) List() (list []dbmodels.Announcement, err error) {
	list = []dbmodels.Announcement{}
	err = i.db.
		Order("created_at DESC").
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
