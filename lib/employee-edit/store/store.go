package editstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	editapimodels "hr-admin-backend/models/api/edit"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.EmployeeEdit) (id string, err error)
	GetByID(id string) (rec *dbmodels.EmployeeEdit, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter editapimodels.EmployeeEditFilter) (list []dbmodels.EmployeeEdit, err error)
	ListCount(filter editapimodels.EmployeeEditFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.EmployeeEdit) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.EmployeeEdit, error) {
	rec := dbmodels.EmployeeEdit{}
	err := i.db.
		Preload("Employee").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.EmployeeEdit{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("edit record not found")
	}
	return nil
}

func (i impl) listQuery(filter editapimodels.EmployeeEditFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.EmployeeEdit{})
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}

func (i impl) ListCount(filter editapimodels.EmployeeEditFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter editapimodels.EmployeeEditFilter) (list []dbmodels.EmployeeEdit, err error) {
	list = []dbmodels.EmployeeEdit{}
	page, limit := filter.GetPage()
	err = i.listQuery(filter).
		Preload("Employee").
		Order("submitted_at DESC").
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
