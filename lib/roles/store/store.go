package rolesstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Role) (id string, err error)
	GetByID(id string) (rec *dbmodels.Role, err error)
	GetByName(name string) (rec *dbmodels.Role, err error)
	Update(rec dbmodels.Role) error
	Delete(id string) error
	List() (list []dbmodels.Role, err error)
	UsageCount(roleName string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Role) (id string, err error) {
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.
		Where("id = ?", id).
		Preload("Permissions").
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

func (i impl) GetByName(name string) (*dbmodels.Role, error) {
	rec := dbmodels.Role{}
	err := i.db.
		Where("name = ?", name).
		Preload("Permissions").
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

func (i impl) Update(rec dbmodels.Role) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		err := tx.
			Model(&dbmodels.Role{BaseModel: dbmodels.BaseModel{ID: rec.ID}}).
			Update("name", rec.Name).
			Error
		if err != nil {
			return err
		}
		return tx.
			Model(&dbmodels.Role{BaseModel: dbmodels.BaseModel{ID: rec.ID}}).
			Association("Permissions").
			Replace(rec.Permissions)
	})
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Role{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Select(clause.Associations).
		Delete(&rec).
		Error
}

func (i impl) List() (list []dbmodels.Role, err error) {
	list = []dbmodels.Role{}
	err = i.db.
		Preload("Permissions").
		Order("name ASC").
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

func (i impl) UsageCount(roleName string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.User{}).
		Where("role = ?", roleName).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
