package dbmodels

import (
	"time"
)

type Employee struct {
	BaseModel
	FullName               string `gorm:"type:varchar(255);index"`
	Sex                    string `gorm:"type:varchar(20)"`
	Rank                   string `gorm:"type:varchar(255)"`
	GradeLevel             string `gorm:"type:varchar(50)"`
	DateOfBirth            time.Time
	DateOfFirstAppointment time.Time
	LgaOfOrigin            string `gorm:"type:varchar(255)"`
	Department             string `gorm:"type:varchar(255);index"`
	PresentStation         string `gorm:"type:varchar(255)"`
	PhoneNumber            string `gorm:"type:varchar(50)"`
	Qualifications         string
	DateOfConfirmation     *time.Time
	DateOfTransfer         *time.Time
	Remark                 string
	ProfilePictureURL      string  `gorm:"type:varchar(512)"`
	LgaID                  *string `gorm:"type:varchar(36);index"`
	Lga                    *Lga
}
