package dbmodels

type FileStorage struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Type        FileType
	ContentType string  `gorm:"type:varchar(100)"`
	LgaID       *string `gorm:"type:varchar(36);index"`
	EmployeeID  *string `gorm:"type:varchar(36);index"`
	NewsID      *string `gorm:"type:varchar(36);index"`
}

type FileType string

const (
	FileTypeEmployeePhoto FileType = "employee_photo"
	FileTypeEmployeeDoc   FileType = "employee_doc"
	FileTypeNewsImage     FileType = "news_image"
)
