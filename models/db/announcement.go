package dbmodels

type Announcement struct {
	BaseModel
	Title   string `gorm:"type:varchar(255)"`
	Content string
}
