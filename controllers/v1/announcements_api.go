package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	announcementhandler "hr-admin-backend/lib/announcement"
	"hr-admin-backend/middleware"
	"hr-admin-backend/models"
	apimodels "hr-admin-backend/models/api"
)

type announcementApiController struct {
	controllers.BaseAPIController
}

func InitAnnouncementApiRouters(app *fiber.App) {
	controller := announcementApiController{}
	app.Route("announcements", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", middleware.RoleRequired(models.UserRoleSuperAdmin, models.UserRoleAdmin), controller.create)
		router.Delete(":id", middleware.RoleRequired(models.UserRoleSuperAdmin, models.UserRoleAdmin), controller.delete)
	})
}

// @Summary Announcement list
// @Tags Announcements
// @Description Lists announcements, newest first
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Announcement}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/announcements [get]
func (c *announcementApiController) list(ctx *fiber.Ctx) error {
	list, err := announcementhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list announcements")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create announcement
// @Tags Announcements
// @Description Creates an announcement
// @Param   Authorization		header	string									true	"Authorization token"
// @Param	body 				body	announcementhandler.AnnouncementData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/announcements [post]
func (c *announcementApiController) create(ctx *fiber.Ctx) error {
	var payload announcementhandler.AnnouncementData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := announcementhandler.Instance.Create(payload, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create announcement")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Delete announcement
// @Tags Announcements
// @Description Deletes an announcement
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/announcements/{id} [delete]
func (c *announcementApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = announcementhandler.Instance.Delete(id, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete announcement")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
