package dictapimodels

import (
	"github.com/pkg/errors"
	dbmodels "hr-admin-backend/models/db"
)

type RoleData struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

func (d RoleData) Validate() error {
	if len(d.Name) < 2 {
		return errors.New("role name must be at least 2 characters")
	}
	for _, p := range d.Permissions {
		if p == "" {
			return errors.New("permission name cannot be empty")
		}
	}
	return nil
}

type RoleView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
	UsageCount  *int64   `json:"usage_count,omitempty"`
}

func RoleConvert(rec dbmodels.Role) RoleView {
	permissions := make([]string, 0, len(rec.Permissions))
	for _, p := range rec.Permissions {
		permissions = append(permissions, p.Name)
	}
	return RoleView{
		ID:          rec.ID,
		Name:        rec.Name,
		Permissions: permissions,
	}
}
