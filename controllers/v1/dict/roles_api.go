package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	roleshandler "hr-admin-backend/lib/roles"
	apimodels "hr-admin-backend/models/api"
	dictapimodels "hr-admin-backend/models/api/dict"
)

type rolesDictApiController struct {
	controllers.BaseAPIController
}

func InitRolesDictApiRouters(app *fiber.App) {
	controller := rolesDictApiController{}
	app.Route("roles", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Role list
// @Tags Dictionary. Roles
// @Description Lists roles with permissions, optionally with usage counts
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   include_usage		query	bool	false	"include per-role user counts"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.RoleView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/roles [get]
func (c *rolesDictApiController) list(ctx *fiber.Ctx) error {
	includeUsage := ctx.QueryBool("include_usage")
	list, err := roleshandler.Instance.List(includeUsage)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list roles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create role
// @Tags Dictionary. Roles
// @Description Creates a role with its permission set
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	dictapimodels.RoleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/roles [post]
func (c *rolesDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.RoleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := roleshandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create role")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update role
// @Tags Dictionary. Roles
// @Description Replaces role name and permission set
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	dictapimodels.RoleData	true	"request body"
// @Param   id          		path    string					true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/roles/{id} [put]
func (c *rolesDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.RoleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = roleshandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update role")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete role
// @Tags Dictionary. Roles
// @Description Deletes an unused role
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/roles/{id} [delete]
func (c *rolesDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = roleshandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete role")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
