package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	wsclient "hr-admin-backend/lib/ws/client"
	connectionhub "hr-admin-backend/lib/ws/hub/connection-hub"
	"hr-admin-backend/middleware"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		userID := middleware.GetUserID(ctx)
		ctx.Locals("userID", userID)
		return ctx.Next()
	})
	app.Get("/", websocket.New(queueEventsHandler))
}

// @Summary Queue event stream
// @Tags Websocket
// @Description Pushes approval queue events to connected admin sessions
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.QueueEvent
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func queueEventsHandler(c *websocket.Conn) {
	userID := c.Locals("userID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID)
	}()
	client.Dispatch()
}
