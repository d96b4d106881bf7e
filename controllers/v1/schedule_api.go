package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"hr-records-backend/controllers"
	scheduleshandler "hr-records-backend/lib/schedules"
	"hr-records-backend/middleware"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
	scheduleapimodels "hr-records-backend/models/api/schedule"
)

type scheduleApiController struct {
	controllers.BaseAPIController
	provider scheduleshandler.Provider
}

func InitScheduleApiRouters(app fiber.Router) {
	initScheduleRouters(app, scheduleshandler.Instance)
}

func initScheduleRouters(app fiber.Router, provider scheduleshandler.Provider) {
	controller := scheduleApiController{provider: provider}
	app.Route("schedules", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("list", controller.list)
		router.Get("calendar", controller.calendar)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Post("", controller.methodOverride) // ?_method=PUT
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список
// @Tags График
// @Description Список событий графика
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	search		query	string	false	"поиск"
// @Param	type		query	string	false	"тип события"
// @Param	employee_id	query	string	false	"сотрудник"
// @Param	date_from	query	string	false	"дата с (YYYY-MM-DD)"
// @Param	date_to		query	string	false	"дата по (YYYY-MM-DD)"
// @Param	page		query	int		false	"страница"
// @Param	limit		query	int		false	"записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]scheduleapimodels.ScheduleView}
// @Failure 401
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/list [get]
func (c *scheduleApiController) list(ctx *fiber.Ctx) error {
	var filter recordapimodels.RecordFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неверные параметры запроса"))
	}
	list, rowCount, err := c.provider.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения графика")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Календарь
// @Tags График
// @Description События месяца по дням
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	month		query	string	false	"месяц (YYYY-MM), по умолчанию текущий"
// @Param	employee_id	query	string	false	"сотрудник"
// @Success 200 {object} apimodels.Response{data=scheduleapimodels.CalendarView}
// @Failure 401
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/calendar [get]
func (c *scheduleApiController) calendar(ctx *fiber.Ctx) error {
	resp, err := c.provider.Calendar(ctx.Query("month"), ctx.Query("employee_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения календаря")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание
// @Tags График
// @Description Создание события
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 scheduleapimodels.ScheduleData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules [post]
func (c *scheduleApiController) create(ctx *fiber.Ctx) error {
	var payload scheduleapimodels.ScheduleData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	id, hMsg, err := c.provider.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания события")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение по ИД
// @Tags График
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=scheduleapimodels.ScheduleView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/{id} [get]
func (c *scheduleApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := c.provider.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения события")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags График
// @Description Обновление. Также доступно как POST /{id}?_method=PUT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 scheduleapimodels.ScheduleData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/{id} [put]
func (c *scheduleApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload scheduleapimodels.ScheduleData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	hMsg, err := c.provider.Update(middleware.GetUserID(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления события")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *scheduleApiController) methodOverride(ctx *fiber.Ctx) error {
	if !isPutOverride(ctx) {
		return ctx.Status(fiber.StatusMethodNotAllowed).JSON(apimodels.NewError("метод не поддерживается"))
	}
	return c.update(ctx)
}

// @Summary Удаление
// @Tags График
// @Description Удаление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/schedules/{id} [delete]
func (c *scheduleApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = c.provider.Delete(middleware.GetUserID(ctx), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления события")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
