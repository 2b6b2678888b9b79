package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	queuehandler "hr-admin-backend/lib/audit-queue"
	"hr-admin-backend/middleware"
	"hr-admin-backend/models"
	apimodels "hr-admin-backend/models/api"
	auditapimodels "hr-admin-backend/models/api/audit"
)

type auditQueueApiController struct {
	controllers.BaseAPIController
}

func InitAuditQueueApiRouters(app *fiber.App) {
	controller := auditQueueApiController{}
	resolverOnly := middleware.RoleRequired(models.UserRoleSuperAdmin, models.UserRoleAdmin)
	app.Route("audit_queue", func(router fiber.Router) {
		router.Post("list", middleware.RoleRequired(models.UserRoleSuperAdmin, models.UserRoleAdmin, models.UserRoleAudit), controller.list)
		router.Get("pending_count", middleware.RoleRequired(models.UserRoleSuperAdmin, models.UserRoleAdmin, models.UserRoleAudit), controller.pendingCount)
		router.Post(":id/approve", resolverOnly, controller.approve)
		router.Post(":id/reject", resolverOnly, controller.reject)
	})
}

// @Summary Queue list
// @Tags Audit queue
// @Description Lists pending queue entries, newest first
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	auditapimodels.QueueFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]auditapimodels.QueueItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit_queue/list [post]
func (c *auditQueueApiController) list(ctx *fiber.Ctx) error {
	var payload auditapimodels.QueueFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := queuehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list queue entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Pending count
// @Tags Audit queue
// @Description Number of entries awaiting a decision
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit_queue/pending_count [get]
func (c *auditQueueApiController) pendingCount(ctx *fiber.Ctx) error {
	count, err := queuehandler.Instance.PendingCount()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to count queue entries")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(count))
}

// @Summary Approve queue entry
// @Tags Audit queue
// @Description Applies the queued change and removes the entry
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	auditapimodels.ResolveData	true	"request body"
// @Param   id          		path    string							true    "rec ID"
// @Success 200 {object} apimodels.Response{data=auditapimodels.ResolveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit_queue/{id}/approve [post]
func (c *auditQueueApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload auditapimodels.ResolveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := queuehandler.Instance.Approve(id, middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to approve queue entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Reject queue entry
// @Tags Audit queue
// @Description Closes the queued change without applying it
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	auditapimodels.ResolveData	true	"request body"
// @Param   id          		path    string							true    "rec ID"
// @Success 200 {object} apimodels.Response{data=auditapimodels.ResolveResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/audit_queue/{id}/reject [post]
func (c *auditQueueApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload auditapimodels.ResolveData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := queuehandler.Instance.Reject(id, middleware.GetActor(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to reject queue entry")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
