package editapimodels

import (
	"time"

	"github.com/pkg/errors"
	apimodels "hr-admin-backend/models/api"
	dbmodels "hr-admin-backend/models/db"
)

type EmployeeEditData struct {
	EmployeeID string               `json:"employee_id"`
	Changes    dbmodels.EditChanges `json:"changes"`
	Reason     string               `json:"reason"`
}

func (d EmployeeEditData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("employee id is required")
	}
	if len(d.Changes) == 0 {
		return errors.New("changes must contain at least one field to update")
	}
	if d.Reason == "" {
		return errors.New("reason is required and cannot be empty")
	}
	return d.Changes.Validate()
}

type EmployeeEditFilter struct {
	apimodels.Pagination
	EmployeeID string `json:"employee_id"`
	Status     string `json:"status"`
}

type EmployeeEditView struct {
	ID              string               `json:"id"`
	EmployeeID      string               `json:"employee_id"`
	EmployeeName    string               `json:"employee_name,omitempty"`
	SubmittedByID   string               `json:"submitted_by_id"`
	SubmittedByName string               `json:"submitted_by_name"`
	Changes         dbmodels.EditChanges `json:"changes"`
	Reason          string               `json:"reason"`
	Status          string               `json:"status"`
	ReviewerID      string               `json:"reviewer_id,omitempty"`
	Notes           string               `json:"notes,omitempty"`
	SubmittedAt     time.Time            `json:"submitted_at"`
	ResolvedAt      *time.Time           `json:"resolved_at,omitempty"`
}

func EmployeeEditConvert(rec dbmodels.EmployeeEdit) EmployeeEditView {
	view := EmployeeEditView{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		SubmittedByID:   rec.SubmittedByID,
		SubmittedByName: rec.SubmittedByName,
		Changes:         rec.Changes,
		Reason:          rec.Reason,
		Status:          string(rec.Status),
		Notes:           rec.Notes,
		SubmittedAt:     rec.SubmittedAt,
		ResolvedAt:      rec.ResolvedAt,
	}
	if rec.ReviewerID != nil {
		view.ReviewerID = *rec.ReviewerID
	}
	if rec.Employee != nil {
		view.EmployeeName = rec.Employee.FullName
	}
	return view
}
