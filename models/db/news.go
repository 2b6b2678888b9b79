package dbmodels

import (
	"time"

	"github.com/lib/pq"
	"hr-admin-backend/models"
)

type News struct {
	BaseModel
	Title          string `gorm:"type:varchar(255)"`
	Slug           string `gorm:"type:varchar(255);uniqueIndex"`
	Summary        string
	Content        string
	Category       string            `gorm:"type:varchar(100)"`
	ImageURL       string            `gorm:"type:varchar(512)"`
	Tags           pq.StringArray    `gorm:"type:text[]"`
	Status         models.NewsStatus `gorm:"type:varchar(20);index"`
	AuthorID       string            `gorm:"type:varchar(36);index"`
	Author         *User
	PublishedAt    *time.Time
	RejectionNotes *string
}
