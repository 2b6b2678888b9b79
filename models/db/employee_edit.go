package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"hr-admin-backend/models"
)

// EmployeeEdit is a staged change to an employee record. It stays pending
// until the audit queue resolves it; a resolved row is terminal and is kept
// as history.
type EmployeeEdit struct {
	BaseModel
	EmployeeID      string `gorm:"type:varchar(36);index"`
	Employee        *Employee
	SubmittedByID   string      `gorm:"type:varchar(36);index"`
	SubmittedByName string      `gorm:"type:varchar(255)"`
	Changes         EditChanges `gorm:"type:jsonb"`
	Reason          string
	Status          models.EditStatus `gorm:"type:varchar(20);index"`
	ReviewerID      *string           `gorm:"type:varchar(36)"`
	Notes           string
	SubmittedAt     time.Time
	ResolvedAt      *time.Time
}

// EditChanges maps employee column names to proposed new values.
type EditChanges map[string]string

func (c EditChanges) Value() (driver.Value, error) {
	valueString, err := json.Marshal(c)
	return string(valueString), err
}

func (c *EditChanges) Scan(value any) error {
	if value == nil {
		return nil
	}
	if err := json.Unmarshal(value.([]byte), &c); err != nil {
		return err
	}
	return nil
}

var editableEmployeeFields = map[string]bool{
	"full_name":                 true,
	"sex":                       true,
	"rank":                      true,
	"grade_level":               true,
	"date_of_birth":             true,
	"date_of_first_appointment": true,
	"lga_of_origin":             true,
	"department":                true,
	"present_station":           true,
	"phone_number":              true,
	"qualifications":            true,
	"date_of_confirmation":      true,
	"date_of_transfer":          true,
	"remark":                    true,
}

var employeeDateFields = map[string]bool{
	"date_of_birth":             true,
	"date_of_first_appointment": true,
	"date_of_confirmation":      true,
	"date_of_transfer":          true,
}

const editDateLayout = "2006-01-02"

// Validate checks that every changed field names an editable employee column
// and that date values parse.
func (c EditChanges) Validate() error {
	for field, value := range c {
		if !editableEmployeeFields[field] {
			return errors.Errorf("field %q is not editable", field)
		}
		if employeeDateFields[field] && value != "" {
			if _, err := time.Parse(editDateLayout, value); err != nil {
				return errors.Errorf("field %q: invalid date %q, expected YYYY-MM-DD", field, value)
			}
		}
	}
	return nil
}

// ToUpdateMap converts the changes into a column update map, parsing date
// columns into time values.
func (c EditChanges) ToUpdateMap() (map[string]interface{}, error) {
	updMap := make(map[string]interface{}, len(c))
	for field, value := range c {
		if !editableEmployeeFields[field] {
			return nil, errors.Errorf("field %q is not editable", field)
		}
		if employeeDateFields[field] {
			if value == "" {
				updMap[field] = nil
				continue
			}
			t, err := time.Parse(editDateLayout, value)
			if err != nil {
				return nil, errors.Wrapf(err, "field %q", field)
			}
			updMap[field] = t
			continue
		}
		updMap[field] = value
	}
	return updMap, nil
}
