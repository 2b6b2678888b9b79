package activity

import (
	log "github.com/sirupsen/logrus"
	"hr-admin-backend/db"
	activitystore "hr-admin-backend/lib/activity/store"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	activityapimodels "hr-admin-backend/models/api/activity"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Save(actor models.Actor, action models.ActionType, entityType, entityID, entityName string, details dbmodels.JSONMap)
	List(filter activityapimodels.ActivityFilter) (list []activityapimodels.ActivityView, count int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: activitystore.NewInstance(db.DB),
	}
}

type impl struct {
	store activitystore.Provider
}

// Save never fails the caller. A lost trail record is logged and swallowed
// so business writes do not roll back over bookkeeping.
func (i impl) Save(actor models.Actor, action models.ActionType, entityType, entityID, entityName string, details dbmodels.JSONMap) {
	rec := dbmodels.Activity{
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
	}
	if err := i.store.Create(rec); err != nil {
		log.WithError(err).
			WithField("entity_id", entityID).
			Error("failed to save activity record")
	}
}

func (i impl) List(filter activityapimodels.ActivityFilter) (list []activityapimodels.ActivityView, count int64, err error) {
	if err = filter.Validate(); err != nil {
		return nil, 0, apperrors.NewValidation(err.Error())
	}
	count, err = i.store.ListCount(filter)
	if err != nil {
		return nil, 0, err
	}
	recs, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]activityapimodels.ActivityView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, activityapimodels.ActivityConvert(rec))
	}
	return list, count, nil
}
