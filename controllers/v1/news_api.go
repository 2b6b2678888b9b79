package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	newshandler "hr-admin-backend/lib/news"
	"hr-admin-backend/middleware"
	"hr-admin-backend/models"
	apimodels "hr-admin-backend/models/api"
	newsapimodels "hr-admin-backend/models/api/news"
)

type newsApiController struct {
	controllers.BaseAPIController
}

var newsEditorRoles = []models.UserRole{
	models.UserRoleSuperAdmin,
	models.UserRoleAdmin,
	models.UserRoleMediaAdmin,
}

func InitNewsApiRouters(app *fiber.App) {
	controller := newsApiController{}
	app.Route("news", func(router fiber.Router) {
		router.Post("", middleware.RoleRequired(newsEditorRoles...), controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", middleware.RoleRequired(newsEditorRoles...), controller.update)
		router.Delete(":id", middleware.RoleRequired(models.UserRoleSuperAdmin, models.UserRoleAdmin), controller.delete)
		router.Post(":id/submit", middleware.RoleRequired(newsEditorRoles...), controller.submit)
	})
}

// InitPublicNewsApiRouters mounts the unauthenticated read-only surface.
func InitPublicNewsApiRouters(app *fiber.App) {
	controller := newsApiController{}
	app.Route("news", func(router fiber.Router) {
		router.Get("slug/:slug", controller.getBySlug)
	})
}

// @Summary Create news post
// @Tags News
// @Description Creates a draft news post
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	newsapimodels.NewsData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/news [post]
func (c *newsApiController) create(ctx *fiber.Ctx) error {
	var payload newsapimodels.NewsData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := newshandler.Instance.Create(payload, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create news post")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary News list
// @Tags News
// @Description Paginated news list
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	newsapimodels.NewsFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]newsapimodels.NewsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/news/list [post]
func (c *newsApiController) list(ctx *fiber.Ctx) error {
	var payload newsapimodels.NewsFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, count, err := newshandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list news posts")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, count))
}

// @Summary Get news post
// @Tags News
// @Description Returns one news post
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=newsapimodels.NewsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/news/{id} [get]
func (c *newsApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := newshandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get news post")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get published post by slug
// @Tags News
// @Description Public endpoint serving one published post
// @Param   slug          		path    string	true    "post slug"
// @Success 200 {object} apimodels.Response{data=newsapimodels.NewsView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/news/slug/{slug} [get]
func (c *newsApiController) getBySlug(ctx *fiber.Ctx) error {
	slug, err := c.GetIDByKey(ctx, "slug")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := newshandler.Instance.GetBySlug(slug)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to get news post")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update news post
// @Tags News
// @Description Updates a draft or pending post
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	newsapimodels.NewsData	true	"request body"
// @Param   id          		path    string						true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/news/{id} [put]
func (c *newsApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload newsapimodels.NewsData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = newshandler.Instance.Update(id, payload, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update news post")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete news post
// @Tags News
// @Description Deletes a post and its queue entry
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/news/{id} [delete]
func (c *newsApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = newshandler.Instance.Delete(id, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete news post")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Submit news post
// @Tags News
// @Description Sends a draft to review, privileged roles publish immediately
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response{data=newsapimodels.SubmitResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/news/{id}/submit [post]
func (c *newsApiController) submit(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := newshandler.Instance.Submit(id, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to submit news post")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}
