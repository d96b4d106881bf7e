package dict

import (
	"github.com/gofiber/fiber/v2"
	"hr-records-backend/controllers"
	lineprovider "hr-records-backend/lib/dicts/line"
	apimodels "hr-records-backend/models/api"
	dictapimodels "hr-records-backend/models/api/dict"
)

type lineDictApiController struct {
	controllers.BaseAPIController
	provider lineprovider.Provider
}

func InitLineDictApiRouters(app fiber.Router) {
	initLineRouters(app, lineprovider.Instance)
}

func initLineRouters(app fiber.Router, provider lineprovider.Provider) {
	controller := lineDictApiController{provider: provider}
	app.Route("lines", func(router fiber.Router) {
		router.Get("", controller.lineList)
		router.Post("", controller.lineCreate)
		router.Delete(":id", controller.lineDelete)
	})
}

// @Summary Список
// @Tags Справочник. Линия
// @Description Список линий подразделения. 503 если справочник отключен
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	department_id	query	string	false	"подразделение"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.LineView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/lines [get]
func (c *lineDictApiController) lineList(ctx *fiber.Ctx) error {
	list, err := c.provider.List(ctx.Query("department_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка линий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Создание
// @Tags Справочник. Линия
// @Description Создание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dictapimodels.LineData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/lines [post]
func (c *lineDictApiController) lineCreate(ctx *fiber.Ctx) error {
	var payload dictapimodels.LineData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания линии")
	}
	id, hMsg, err := c.provider.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания линии")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Удаление
// @Tags Справочник. Линия
// @Description Удаление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/lines/{id} [delete]
func (c *lineDictApiController) lineDelete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	hMsg, err := c.provider.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления линии")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
