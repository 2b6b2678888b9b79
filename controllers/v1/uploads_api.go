package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"hr-admin-backend/controllers"
	filestorage "hr-admin-backend/lib/file-storage"
	"hr-admin-backend/middleware"
	apimodels "hr-admin-backend/models/api"
	dbmodels "hr-admin-backend/models/db"
)

type uploadsApiController struct {
	controllers.BaseAPIController
}

func InitUploadsApiRouters(app *fiber.App) {
	controller := uploadsApiController{}
	app.Route("uploads", func(router fiber.Router) {
		router.Post("", controller.upload)
		router.Get("employee/:id", controller.listByEmployee)
		router.Get(":id", controller.download)
	})
}

// @Summary Upload file
// @Tags Uploads
// @Description Uploads a file (multipart form: file, type, employee_id/news_id)
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   file				formData	file	true	"payload"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/uploads [post]
func (c *uploadsApiController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read uploaded file")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to read uploaded file")
	}

	data := filestorage.UploadData{
		Name:        fileHeader.Filename,
		Type:        dbmodels.FileType(ctx.FormValue("type")),
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Body:        body,
		EmployeeID:  ctx.FormValue("employee_id"),
		NewsID:      ctx.FormValue("news_id"),
		LgaID:       ctx.FormValue("lga_id"),
	}
	id, err := filestorage.Instance.Upload(ctx.UserContext(), data, middleware.GetActor(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to upload file")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Employee files
// @Tags Uploads
// @Description Lists files attached to an employee record
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "employee ID"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.FileStorage}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/uploads/employee/{id} [get]
func (c *uploadsApiController) listByEmployee(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := filestorage.Instance.ListByEmployee(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to list files")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Download file
// @Tags Uploads
// @Description Returns the stored file body
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/uploads/{id} [get]
func (c *uploadsApiController) download(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, body, err := filestorage.Instance.Get(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to download file")
	}
	if rec.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, rec.ContentType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+rec.Name+`"`)
	return ctx.Status(fiber.StatusOK).Send(body)
}
