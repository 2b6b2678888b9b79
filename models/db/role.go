package dbmodels

type Role struct {
	BaseModel
	Name        string       `gorm:"type:varchar(100);uniqueIndex"`
	Permissions []Permission `gorm:"many2many:role_permissions"`
}

type Permission struct {
	BaseModel
	Name string `gorm:"type:varchar(100);uniqueIndex"`
}
