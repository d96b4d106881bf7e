package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-records-backend/controllers"
	employeeshandler "hr-records-backend/lib/employees"
	apimodels "hr-records-backend/models/api"
	employeeapimodels "hr-records-backend/models/api/employee"
)

type employeeApiController struct {
	controllers.BaseAPIController
	provider employeeshandler.Provider
}

func InitEmployeeApiRouters(app fiber.Router) {
	initEmployeeRouters(app, employeeshandler.Instance)
}

func initEmployeeRouters(app fiber.Router, provider employeeshandler.Provider) {
	controller := employeeApiController{provider: provider}
	app.Route("employees", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("list", controller.list)
		router.Get("export", controller.export)
		router.Post("match", controller.match)
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
// @Tags Сотрудники
// @Description Список сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	search			query	string	false	"ФИО или табельный номер"
// @Param	active_only		query	bool	false	"только работающие"
// @Param	department_id	query	string	false	"подразделение"
// @Param	line_id			query	string	false	"линия"
// @Success 200 {object} apimodels.Response{data=[]employeeapimodels.EmployeeView}
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/list [get]
func (c *employeeApiController) list(ctx *fiber.Ctx) error {
	var filter employeeapimodels.EmployeeFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неверные параметры запроса"))
	}
	list, err := c.provider.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка сотрудников")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Подбор сотрудника
// @Tags Сотрудники
// @Description Фильтрация списка по запросу и автоматический выбор при единственном точном совпадении.
// @Description Без roster используется список работающих сотрудников
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.MatchRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.MatchResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/match [post]
func (c *employeeApiController) match(ctx *fiber.Ctx) error {
	var payload employeeapimodels.MatchRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := c.provider.Match(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подбора сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузить в Excel
// @Tags Сотрудники
// @Description Выгрузить в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	search			query	string	false	"ФИО или табельный номер"
// @Param	active_only		query	bool	false	"только работающие"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/export [get]
func (c *employeeApiController) export(ctx *fiber.Ctx) error {
	var filter employeeapimodels.EmployeeFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("неверные параметры запроса"))
	}
	data, err := c.provider.Export(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки сотрудников в Excel")
	}
	fileName := fmt.Sprintf("employees-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Создание
// @Tags Сотрудники
// @Description Создание. JSON или multipart с файлом photo
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Param	photo	formData	file	false	"фото (jpg, png)"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees [post]
func (c *employeeApiController) create(ctx *fiber.Ctx) error {
	var payload employeeapimodels.EmployeeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	photo, err := c.FormFile(ctx, "photo")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения фото")
	}

	id, hMsg, err := c.provider.Create(payload, photo)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания сотрудника")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение по ИД
// @Tags Сотрудники
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=employeeapimodels.EmployeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [get]
func (c *employeeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := c.provider.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения сотрудника")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags Сотрудники
// @Description Обновление. Также доступно как POST /{id}?_method=PUT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 employeeapimodels.EmployeeData	true	"request body"
// @Param	photo	formData	file	false	"новое фото"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [put]
func (c *employeeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload employeeapimodels.EmployeeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	photo, err := c.FormFile(ctx, "photo")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения фото")
	}

	hMsg, err := c.provider.Update(id, payload, photo)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления сотрудника")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *employeeApiController) methodOverride(ctx *fiber.Ctx) error {
	if !isPutOverride(ctx) {
		return ctx.Status(fiber.StatusMethodNotAllowed).JSON(apimodels.NewError("метод не поддерживается"))
	}
	return c.update(ctx)
}

// @Summary Удаление
// @Tags Сотрудники
// @Description Удаление. Недоступно, если по сотруднику есть кадровые записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/employees/{id} [delete]
func (c *employeeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	hMsg, err := c.provider.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления сотрудника")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
