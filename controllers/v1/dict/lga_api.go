package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	lgahandler "hr-admin-backend/lib/dicts/lga"
	apimodels "hr-admin-backend/models/api"
	dictapimodels "hr-admin-backend/models/api/dict"
)

type lgaDictApiController struct {
	controllers.BaseAPIController
}

func InitLgaDictApiRouters(app *fiber.App) {
	controller := lgaDictApiController{}
	app.Route("lga", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary LGA list
// @Tags Dictionary. LGA
// @Description Lists all local government areas
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.LgaView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/lga [get]
func (c *lgaDictApiController) list(ctx *fiber.Ctx) error {
	list, err := lgahandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list LGAs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create LGA
// @Tags Dictionary. LGA
// @Description Creates a local government area
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	dictapimodels.LgaData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/lga [post]
func (c *lgaDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.LgaData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := lgahandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create LGA")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get LGA
// @Tags Dictionary. LGA
// @Description Returns one local government area
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.LgaView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/lga/{id} [get]
func (c *lgaDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := lgahandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get LGA")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update LGA
// @Tags Dictionary. LGA
// @Description Updates a local government area
// @Param   Authorization		header	string					true	"Authorization token"
// @Param	body 				body	dictapimodels.LgaData	true	"request body"
// @Param   id          		path    string					true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/lga/{id} [put]
func (c *lgaDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.LgaData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = lgahandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update LGA")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete LGA
// @Tags Dictionary. LGA
// @Description Deletes a local government area
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/lga/{id} [delete]
func (c *lgaDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = lgahandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete LGA")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
