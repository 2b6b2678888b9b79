package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	dashboardhandler "hr-admin-backend/lib/dashboard"
	apimodels "hr-admin-backend/models/api"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Get("notifications", controller.notifications)
	})
}

// @Summary Dashboard counters
// @Tags Dashboard
// @Description Pending audit count and critical retirement alert count
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.NotificationsView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/notifications [get]
func (c *dashboardApiController) notifications(ctx *fiber.Ctx) error {
	view, err := dashboardhandler.Instance.Notifications()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to collect dashboard counters")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
