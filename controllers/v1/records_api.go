package apiv1

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"hr-records-backend/controllers"
	recordhandler "hr-records-backend/lib/hr-records/handler"
	"hr-records-backend/lib/hr-records/workflow"
	"hr-records-backend/middleware"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
)

type recordsApiController[T workflow.Record, D recordhandler.Data[T], V any] struct {
	controllers.BaseAPIController
	resource     string
	provider     recordhandler.Provider[T, D, V]
	listResponse func(list []V, rowCount int64) interface{}
}

func initRecordRouters[T workflow.Record, D recordhandler.Data[T], V any](app fiber.Router, resource string,
	provider recordhandler.Provider[T, D, V], listResponse func(list []V, rowCount int64) interface{}) {
	controller := &recordsApiController[T, D, V]{
		resource:     resource,
		provider:     provider,
		listResponse: listResponse,
	}
	if controller.listResponse == nil {
		controller.listResponse = func(list []V, rowCount int64) interface{} {
			return apimodels.NewScrollerResponse(list, rowCount)
		}
	}
	app.Route(resource, func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("list", controller.list)
		router.Get("page", controller.page)
		router.Get("export", controller.export)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Post("", controller.methodOverride) // ?_method=PUT
			idRoute.Delete("", controller.delete)
			idRoute.Post("status", controller.changeStatus)
			idRoute.Get("history", controller.history)
		})
	})
}

func (c *recordsApiController[T, D, V]) parseFilter(ctx *fiber.Ctx) (recordapimodels.RecordFilter, error) {
	var filter recordapimodels.RecordFilter
	if err := ctx.QueryParser(&filter); err != nil {
		c.GetLogger(ctx).WithError(err).Warn("ошибка разбора параметров запроса")
		return filter, apimodels.ValidationErrors{"query": {"неверные параметры запроса"}}
	}
	return filter, nil
}

// @Summary Список
// @Tags Кадровые записи
// @Description Список записей с фильтром. Без page и limit возвращаются все записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	search		query	string	false	"ФИО, табельный номер или текст записи"
// @Param	status		query	string	false	"статус"
// @Param	type		query	string	false	"тип"
// @Param	employee_id	query	string	false	"сотрудник"
// @Param	date_from	query	string	false	"дата с (YYYY-MM-DD)"
// @Param	date_to		query	string	false	"дата по (YYYY-MM-DD)"
// @Param	page		query	int		false	"страница"
// @Param	limit		query	int		false	"записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 401
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/list [get]
// @router /api/v1/promotions/list [get]
// @router /api/v1/resignations/list [get]
// @router /api/v1/terminations/list [get]
// @router /api/v1/transfers/list [get]
// @router /api/v1/warnings/list [get]
// @router /api/v1/travel-orders/list [get]
func (c *recordsApiController[T, D, V]) list(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка")
	}
	list, rowCount, err := c.provider.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка")
	}
	return ctx.Status(fiber.StatusOK).JSON(c.listResponse(list, rowCount))
}

// @Summary Данные страницы
// @Tags Кадровые записи
// @Description Список записей и справочники страницы. При недоступности линий заполняются degraded и notice
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	search		query	string	false	"поиск"
// @Param	status		query	string	false	"статус"
// @Param	page		query	int		false	"страница"
// @Param	limit		query	int		false	"записей на странице"
// @Success 200 {object} apimodels.Response{data=recordapimodels.PageData}
// @Failure 401
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/page [get]
// @router /api/v1/promotions/page [get]
// @router /api/v1/resignations/page [get]
// @router /api/v1/terminations/page [get]
// @router /api/v1/transfers/page [get]
// @router /api/v1/warnings/page [get]
// @router /api/v1/travel-orders/page [get]
func (c *recordsApiController[T, D, V]) page(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки страницы")
	}
	resp, err := c.provider.Page(ctx.UserContext(), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка загрузки страницы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузить в Excel
// @Tags Кадровые записи
// @Description Выгрузка отфильтрованного списка без постраничного деления
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	search		query	string	false	"поиск"
// @Param	status		query	string	false	"статус"
// @Param	date_from	query	string	false	"дата с (YYYY-MM-DD)"
// @Param	date_to		query	string	false	"дата по (YYYY-MM-DD)"
// @Success 200
// @Failure 401
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/export [get]
// @router /api/v1/promotions/export [get]
// @router /api/v1/resignations/export [get]
// @router /api/v1/terminations/export [get]
// @router /api/v1/transfers/export [get]
// @router /api/v1/warnings/export [get]
// @router /api/v1/travel-orders/export [get]
func (c *recordsApiController[T, D, V]) export(ctx *fiber.Ctx) error {
	filter, err := c.parseFilter(ctx)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки в Excel")
	}
	data, err := c.provider.Export(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки в Excel")
	}
	fileName := fmt.Sprintf("%v-%v.xlsx", c.resource, time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Создание
// @Tags Кадровые записи
// @Description Создание записи на согласовании. JSON или multipart с файлом attachment
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	attachment	formData	file	false	"вложение (pdf, doc, docx, jpg, png)"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards [post]
// @router /api/v1/promotions [post]
// @router /api/v1/resignations [post]
// @router /api/v1/terminations [post]
// @router /api/v1/transfers [post]
// @router /api/v1/warnings [post]
// @router /api/v1/travel-orders [post]
func (c *recordsApiController[T, D, V]) create(ctx *fiber.Ctx) error {
	var payload D
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := c.FormFile(ctx, "attachment")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вложения")
	}

	userID := middleware.GetUserID(ctx)
	id, hMsg, err := c.provider.Create(userID, payload, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания записи")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Получение по ИД
// @Tags Кадровые записи
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/{id} [get]
// @router /api/v1/promotions/{id} [get]
// @router /api/v1/resignations/{id} [get]
// @router /api/v1/terminations/{id} [get]
// @router /api/v1/transfers/{id} [get]
// @router /api/v1/warnings/{id} [get]
// @router /api/v1/travel-orders/{id} [get]
func (c *recordsApiController[T, D, V]) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := c.provider.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения записи")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Обновление
// @Tags Кадровые записи
// @Description Обновление записи на согласовании. Также доступно как POST /{id}?_method=PUT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	attachment	formData	file	false	"новое вложение"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/{id} [put]
// @router /api/v1/promotions/{id} [put]
// @router /api/v1/resignations/{id} [put]
// @router /api/v1/terminations/{id} [put]
// @router /api/v1/transfers/{id} [put]
// @router /api/v1/warnings/{id} [put]
// @router /api/v1/travel-orders/{id} [put]
func (c *recordsApiController[T, D, V]) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload D
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := c.FormFile(ctx, "attachment")
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения вложения")
	}

	userID := middleware.GetUserID(ctx)
	hMsg, err := c.provider.Update(userID, id, payload, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления записи")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

func (c *recordsApiController[T, D, V]) methodOverride(ctx *fiber.Ctx) error {
	if !isPutOverride(ctx) {
		return ctx.Status(fiber.StatusMethodNotAllowed).JSON(apimodels.NewError("метод не поддерживается"))
	}
	return c.update(ctx)
}

// @Summary Удаление
// @Tags Кадровые записи
// @Description Удаление записи на согласовании вместе с вложением
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/{id} [delete]
// @router /api/v1/promotions/{id} [delete]
// @router /api/v1/resignations/{id} [delete]
// @router /api/v1/terminations/{id} [delete]
// @router /api/v1/transfers/{id} [delete]
// @router /api/v1/warnings/{id} [delete]
// @router /api/v1/travel-orders/{id} [delete]
func (c *recordsApiController[T, D, V]) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	hMsg, err := c.provider.Delete(userID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления записи")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса
// @Tags Кадровые записи
// @Description Согласование, отклонение, завершение или отмена записи
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param	body body	 recordapimodels.StatusChangeRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 422 {object} apimodels.ValidationResponse
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/{id}/status [post]
// @router /api/v1/promotions/{id}/status [post]
// @router /api/v1/resignations/{id}/status [post]
// @router /api/v1/terminations/{id}/status [post]
// @router /api/v1/transfers/{id}/status [post]
// @router /api/v1/warnings/{id}/status [post]
// @router /api/v1/travel-orders/{id}/status [post]
func (c *recordsApiController[T, D, V]) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload recordapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	userID := middleware.GetUserID(ctx)
	hMsg, err := c.provider.ChangeStatus(userID, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса записи")
	}
	if hMsg != "" {
		return c.SendHMsg(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary История статусов
// @Tags Кадровые записи
// @Description История статусов
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]recordapimodels.StatusHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/awards/{id}/history [get]
// @router /api/v1/promotions/{id}/history [get]
// @router /api/v1/resignations/{id}/history [get]
// @router /api/v1/terminations/{id}/history [get]
// @router /api/v1/transfers/{id}/history [get]
// @router /api/v1/warnings/{id}/history [get]
// @router /api/v1/travel-orders/{id}/history [get]
func (c *recordsApiController[T, D, V]) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := c.provider.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории статусов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func isPutOverride(ctx *fiber.Ctx) bool {
	return strings.EqualFold(ctx.Query("_method"), fiber.MethodPut)
}
