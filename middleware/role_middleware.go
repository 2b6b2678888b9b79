package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "hr-admin-backend/lib/utils/auth-utils"
	"hr-admin-backend/models"
	apimodels "hr-admin-backend/models/api"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

func GetUserLga(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if lga, exist := claims["lga"]; exist {
		if stringLga, ok := lga.(string); ok {
			return stringLga
		}
	}
	return ""
}

// GetActor collects the authenticated identity passed to the handlers.
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		ID:    GetUserID(ctx),
		Name:  GetUserName(ctx),
		Role:  GetUserRole(ctx),
		LgaID: GetUserLga(ctx),
	}
}

func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		userRole := GetUserRole(ctx)
		for _, role := range roles {
			if userRole == role {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation is not permitted for your role"))
	}
}

func SuperAdminRoleRequired() fiber.Handler {
	return RoleRequired(models.UserRoleSuperAdmin)
}
