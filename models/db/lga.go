package dbmodels

// Lga is a local-government area, the administrative unit employees and
// uploads are scoped to.
type Lga struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex"`
	Code string `gorm:"type:varchar(50)"`
}
