package employeestore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	employeeapimodels "hr-admin-backend/models/api/employee"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (id string, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
	Update(id string, updMap map[string]interface{}) error
	ApplyChanges(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error)
	ListAll() (list []dbmodels.Employee, err error)
	ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error)
	ListByLga(lgaID string) (list []dbmodels.Employee, err error)
	ListRetirementCandidates(ageCutoff, serviceCutoff time.Time, department string) (list []dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Preload("Lga").
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
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("employee record not found")
	}
	return nil
}

// ApplyChanges lands an approved edit onto the employee row. It is the same
// conditional write as Update but kept separate so the resolution path reads
// explicitly at call sites.
func (i impl) ApplyChanges(id string, updMap map[string]interface{}) error {
	return i.Update(id, updMap)
}

func (i impl) Delete(id string) error {
	rec := dbmodels.Employee{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) listQuery(filter employeeapimodels.EmployeeFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Employee{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("full_name ILIKE ? OR phone_number ILIKE ?", like, like)
	}
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	return tx
}

func (i impl) ListCount(filter employeeapimodels.EmployeeFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter employeeapimodels.EmployeeFilter) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	page, limit := filter.GetPage()
	err = i.listQuery(filter).
		Preload("Lga").
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

func (i impl) ListAll() (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Order("full_name ASC").
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

func (i impl) ListByLga(lgaID string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("lga_id = ?", lgaID).
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

func (i impl) ListRetirementCandidates(ageCutoff, serviceCutoff time.Time, department string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	tx := i.db.
		Where("date_of_birth <= ? OR date_of_first_appointment <= ?", ageCutoff, serviceCutoff)
	if department != "" {
		tx = tx.Where("department = ?", department)
	}
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}
