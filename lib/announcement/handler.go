package announcementhandler

import (
	"github.com/pkg/errors"
	"hr-admin-backend/db"
	activityhandler "hr-admin-backend/lib/activity"
	announcementstore "hr-admin-backend/lib/announcement/store"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	dbmodels "hr-admin-backend/models/db"
)

type AnnouncementData struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (d AnnouncementData) Validate() error {
	if d.Title == "" {
		return errors.New("title is required")
	}
	if d.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

type Provider interface {
	Create(data AnnouncementData, actor models.Actor) (id string, err error)
	Delete(id string, actor models.Actor) error
	List() (list []dbmodels.Announcement, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    announcementstore.NewInstance(db.DB),
		activity: activityhandler.Instance,
	}
}

type impl struct {
	store    announcementstore.Provider
	activity activityhandler.Provider
}

func (i impl) Create(data AnnouncementData, actor models.Actor) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	rec := dbmodels.Announcement{
		Title:   data.Title,
		Content: data.Content,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	i.activity.Save(actor, models.ActionCreate, "announcement", id, data.Title, nil)
	return id, nil
}

func (i impl) Delete(id string, actor models.Actor) error {
	err := i.store.Delete(id)
	if err != nil {
		return err
	}
	i.activity.Save(actor, models.ActionDelete, "announcement", id, "", nil)
	return nil
}

func (i impl) List() (list []dbmodels.Announcement, err error) {
	return i.store.List()
}
