package newsstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	newsapimodels "hr-admin-backend/models/api/news"
	dbmodels "hr-admin-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.News) (id string, err error)
	GetByID(id string) (rec *dbmodels.News, err error)
	GetBySlug(slug string) (rec *dbmodels.News, err error)
	Update(id string, updMap map[string]interface{}) error
	Delete(id string) error
	List(filter newsapimodels.NewsFilter) (list []dbmodels.News, err error)
	ListCount(filter newsapimodels.NewsFilter) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.News) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.News, error) {
	rec := dbmodels.News{}
	err := i.db.
		Where("id = ?", id).
		Preload("Author").
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

func (i impl) GetBySlug(slug string) (*dbmodels.News, error) {
	rec := dbmodels.News{}
	err := i.db.
		Where("slug = ?", slug).
		Preload("Author").
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
		Model(&dbmodels.News{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("news record not found")
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec := dbmodels.News{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&rec).
		Error
}

func (i impl) listQuery(filter newsapimodels.NewsFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.News{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.AuthorID != "" {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		tx = tx.Where("title ILIKE ? OR summary ILIKE ?", like, like)
	}
	return tx
}

func (i impl) ListCount(filter newsapimodels.NewsFilter) (count int64, err error) {
	err = i.listQuery(filter).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) List(filter newsapimodels.NewsFilter) (list []dbmodels.News, err error) {
	list = []dbmodels.News{}
	page, limit := filter.GetPage()
	err = i.listQuery(filter).
		Preload("Author").
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
