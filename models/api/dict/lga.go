package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "hr-admin-backend/models/db"
)

type LgaData struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (d LgaData) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.Code == "" {
		return errors.New("code is required")
	}
	return nil
}

type LgaView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

func LgaConvert(rec dbmodels.Lga) LgaView {
	return LgaView{
		ID:   rec.ID,
		Name: rec.Name,
		Code: rec.Code,
	}
}
