package activityapimodels

import (
	"time"

	"github.com/pkg/errors"
	apimodels "hr-admin-backend/models/api"
	dbmodels "hr-admin-backend/models/db"
)

const filterDateLayout = "2006-01-02"

type ActivityFilter struct {
	apimodels.Pagination
	ActorID    string `json:"actor_id"`
	EntityType string `json:"entity_type"`
	Query      string `json:"q"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

func (f ActivityFilter) Validate() error {
	if f.StartDate != "" {
		if _, err := time.Parse(filterDateLayout, f.StartDate); err != nil {
			return errors.New("start_date must be in YYYY-MM-DD format")
		}
	}
	if f.EndDate != "" {
		if _, err := time.Parse(filterDateLayout, f.EndDate); err != nil {
			return errors.New("end_date must be in YYYY-MM-DD format")
		}
	}
	return nil
}

type ActivityView struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	ActorName  string            `json:"actor_name"`
	Action     string            `json:"action"`
	EntityType string            `json:"entity_type,omitempty"`
	EntityID   string            `json:"entity_id,omitempty"`
	EntityName string            `json:"entity_name,omitempty"`
	Details    map[string]string `json:"details,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
}

func ActivityConvert(rec dbmodels.Activity) ActivityView {
	return ActivityView{
		ID:         rec.ID,
		ActorID:    rec.ActorID,
		ActorName:  rec.ActorName,
		Action:     string(rec.Action),
		EntityType: rec.EntityType,
		EntityID:   rec.EntityID,
		EntityName: rec.EntityName,
		Details:    rec.Details,
		Timestamp:  rec.CreatedAt,
	}
}
