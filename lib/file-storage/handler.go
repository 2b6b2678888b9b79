package filestorage

import (
	"context"

	"github.com/pkg/errors"
	"hr-admin-backend/db"
	activityhandler "hr-admin-backend/lib/activity"
	filestore "hr-admin-backend/lib/file-storage/store"
	"hr-admin-backend/lib/utils/apperrors"
	"hr-admin-backend/models"
	dbmodels "hr-admin-backend/models/db"
	s3client "hr-admin-backend/s3"
)

type UploadData struct {
	Name        string
	Type        dbmodels.FileType
	ContentType string
	Body        []byte
	EmployeeID  string
	NewsID      string
	LgaID       string
}

func (d UploadData) Validate() error {
	if d.Name == "" {
		return errors.New("file name is required")
	}
	if len(d.Body) == 0 {
		return errors.New("file body is empty")
	}
	switch d.Type {
	case dbmodels.FileTypeEmployeePhoto, dbmodels.FileTypeEmployeeDoc:
		if d.EmployeeID == "" {
			return errors.New("employee id is required")
		}
	case dbmodels.FileTypeNewsImage:
		if d.NewsID == "" {
			return errors.New("news id is required")
		}
	default:
		return errors.Errorf("unknown file type %q", d.Type)
	}
	return nil
}

type Provider interface {
	Upload(ctx context.Context, data UploadData, actor models.Actor) (id string, err error)
	Get(ctx context.Context, id string) (rec *dbmodels.FileStorage, body []byte, err error)
	ListByEmployee(employeeID string) (list []dbmodels.FileStorage, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    filestore.NewInstance(db.DB),
		s3:       s3client.NewProvider(s3client.Client),
		activity: activityhandler.Instance,
	}
}

type impl struct {
	store    filestore.Provider
	s3       s3client.Provider
	activity activityhandler.Provider
}

// Upload stores the object under its database id, the row is the source of
// truth for object names.
func (i impl) Upload(ctx context.Context, data UploadData, actor models.Actor) (id string, err error) {
	if err = data.Validate(); err != nil {
		return "", apperrors.NewValidation(err.Error())
	}
	rec := dbmodels.FileStorage{
		Name:        data.Name,
		Type:        data.Type,
		ContentType: data.ContentType,
	}
	if data.EmployeeID != "" {
		rec.EmployeeID = &data.EmployeeID
	}
	if data.NewsID != "" {
		rec.NewsID = &data.NewsID
	}
	if data.LgaID != "" {
		rec.LgaID = &data.LgaID
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", err
	}
	err = i.s3.PutObject(ctx, id, data.ContentType, data.Body)
	if err != nil {
		return "", err
	}
	i.activity.Save(actor, models.ActionUpload, "file", id, data.Name, nil)
	return id, nil
}

func (i impl) Get(ctx context.Context, id string) (*dbmodels.FileStorage, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, apperrors.NewNotFound("file not found")
	}
	body, err := i.s3.GetObject(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return rec, body, nil
}

func (i impl) ListByEmployee(employeeID string) (list []dbmodels.FileStorage, err error) {
	return i.store.ListByEmployee(employeeID)
}
