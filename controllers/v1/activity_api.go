package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	activityhandler "hr-admin-backend/lib/activity"
	"hr-admin-backend/middleware"
	"hr-admin-backend/models"
	apimodels "hr-admin-backend/models/api"
	activityapimodels "hr-admin-backend/models/api/activity"
)

type activityApiController struct {
	controllers.BaseAPIController
}

func InitActivityApiRouters(app *fiber.App) {
	controller := activityApiController{}
	app.Route("activity", func(router fiber.Router) {
		router.Post("list", middleware.RoleRequired(models.UserRoleSuperAdmin, models.UserRoleAdmin, models.UserRoleAudit), controller.list)
	})
}

// @Summary Activity trail
// @Tags Activity
// @Description Paginated activity trail with filters
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	activityapimodels.ActivityFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]activityapimodels.ActivityView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/activity/list [post]
func (c *activityApiController) list(ctx *fiber.Ctx) error {
	var payload activityapimodels.ActivityFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := activityhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list activity records")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}
