package models

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleMediaAdmin UserRole = "MEDIA_ADMIN"
	UserRoleAudit      UserRole = "AUDIT"
	UserRoleLga        UserRole = "LGA"
)

var DefaultRoles = []UserRole{
	UserRoleSuperAdmin,
	UserRoleAdmin,
	UserRoleMediaAdmin,
	UserRoleAudit,
	UserRoleLga,
}

var roleHumanName = map[UserRole]string{
	UserRoleSuperAdmin: "Super administrator",
	UserRoleAdmin:      "Administrator",
	UserRoleMediaAdmin: "Media administrator",
	UserRoleAudit:      "Audit officer",
	UserRoleLga:        "LGA officer",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

// CanResolveQueue reports whether the role may approve or reject audit queue entries.
func (r UserRole) CanResolveQueue() bool {
	return r == UserRoleSuperAdmin || r == UserRoleAdmin
}

// CanPublishDirect reports whether a news submission by this role skips the
// audit queue and is published immediately.
func (r UserRole) CanPublishDirect() bool {
	return r == UserRoleSuperAdmin || r == UserRoleAdmin
}

const SystemUser = "System"

// Actor is the authenticated identity on whose behalf an operation runs.
// It is extracted from the session by the HTTP layer and trusted as-is.
type Actor struct {
	ID    string
	Name  string
	Role  UserRole
	LgaID string
}
