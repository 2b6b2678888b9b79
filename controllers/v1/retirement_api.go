package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	pdfexport "hr-admin-backend/lib/export/pdf"
	xlsexport "hr-admin-backend/lib/export/xls"
	retirementhandler "hr-admin-backend/lib/retirement"
	apimodels "hr-admin-backend/models/api"
	retirementapimodels "hr-admin-backend/models/api/retirement"
)

type retirementApiController struct {
	controllers.BaseAPIController
}

func InitRetirementApiRouters(app *fiber.App) {
	controller := retirementApiController{}
	app.Route("retirement", func(router fiber.Router) {
		router.Post("alerts", controller.alerts)
		router.Post("export/xlsx", controller.exportXlsx)
		router.Post("export/pdf", controller.exportPdf)
	})
}

// @Summary Retirement alerts
// @Tags Retirement
// @Description Employees retiring within the next twelve months
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	retirementapimodels.AlertFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]retirementapimodels.AlertView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/retirement/alerts [post]
func (c *retirementApiController) alerts(ctx *fiber.Ctx) error {
	var payload retirementapimodels.AlertFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := retirementhandler.Instance.Alerts(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list retirement alerts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Retirement alerts export (xlsx)
// @Tags Retirement
// @Description Exports the alert list as xlsx
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	retirementapimodels.AlertFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/retirement/export/xlsx [post]
func (c *retirementApiController) exportXlsx(ctx *fiber.Ctx) error {
	var payload retirementapimodels.AlertFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := retirementhandler.Instance.Alerts(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list retirement alerts")
	}
	buf, err := xlsexport.Instance.ExportRetirementAlerts(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export retirement alerts")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="retirement_alerts.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Retirement alerts export (pdf)
// @Tags Retirement
// @Description Exports the alert list as a printable pdf report
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	retirementapimodels.AlertFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/retirement/export/pdf [post]
func (c *retirementApiController) exportPdf(ctx *fiber.Ctx) error {
	var payload retirementapimodels.AlertFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := retirementhandler.Instance.Alerts(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list retirement alerts")
	}
	body, err := pdfexport.GenerateRetirementReport(time.Now().Format("2006-01-02 15:04"), list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export retirement alerts")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="retirement_alerts.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}
