package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	edithandler "hr-admin-backend/lib/employee-edit"
	"hr-admin-backend/middleware"
	apimodels "hr-admin-backend/models/api"
	editapimodels "hr-admin-backend/models/api/edit"
)

type employeeEditApiController struct {
	controllers.BaseAPIController
}

func InitEmployeeEditApiRouters(app *fiber.App) {
	controller := employeeEditApiController{}
	app.Route("employee_edits", func(router fiber.Router) {
		router.Post("", controller.submit)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Submit edit proposal
// @Tags Employee edits
// @Description Stages a change to an employee record for review
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	editapimodels.EmployeeEditData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee_edits [post]
func (c *employeeEditApiController) submit(ctx *fiber.Ctx) error {
	var payload editapimodels.EmployeeEditData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := edithandler.Instance.Submit(payload, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to submit edit proposal")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Edit proposal list
// @Tags Employee edits
// @Description Paginated edit proposal list
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	editapimodels.EmployeeEditFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]editapimodels.EmployeeEditView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee_edits/list [post]
func (c *employeeEditApiController) list(ctx *fiber.Ctx) error {
	var payload editapimodels.EmployeeEditFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := edithandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list edit proposals")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}

// @Summary Get edit proposal
// @Tags Employee edits
// @Description Returns one edit proposal
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=editapimodels.EmployeeEditView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employee_edits/{id} [get]
func (c *employeeEditApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := edithandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get edit proposal")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
