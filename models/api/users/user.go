package usersapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-admin-backend/models"
	dbmodels "hr-admin-backend/models/db"
)

type UserData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	LgaID    string `json:"lga_id"`
}

func (d UserData) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.Email == "" {
		return errors.New("email is required")
	}
	if d.Password == "" {
		return errors.New("password is required")
	}
	if d.Role == "" {
		return errors.New("role is required")
	}
	if models.UserRole(d.Role) == models.UserRoleLga && d.LgaID == "" {
		return errors.New("LGA users must be bound to an LGA")
	}
	return nil
}

type UserUpdateData struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	LgaID    string `json:"lga_id"`
	IsActive *bool  `json:"is_active"`
}

type UserView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LgaID     string     `json:"lga_id,omitempty"`
	LgaName   string     `json:"lga_name,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	view := UserView{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		Role:      string(rec.Role),
		IsActive:  rec.IsActive,
		LastLogin: rec.LastLogin,
	}
	if rec.LgaID != nil {
		view.LgaID = *rec.LgaID
	}
	if rec.Lga != nil {
		view.LgaName = rec.Lga.Name
	}
	return view
}
