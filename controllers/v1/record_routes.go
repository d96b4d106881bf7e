package apiv1

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"hr-records-backend/controllers"
	awardshandler "hr-records-backend/lib/awards"
	promotionshandler "hr-records-backend/lib/promotions"
	resignationshandler "hr-records-backend/lib/resignations"
	terminationshandler "hr-records-backend/lib/terminations"
	transfershandler "hr-records-backend/lib/transfers"
	travelordershandler "hr-records-backend/lib/travel-orders"
	warningshandler "hr-records-backend/lib/warnings"
	apimodels "hr-records-backend/models/api"
	recordapimodels "hr-records-backend/models/api/records"
)

func InitAwardApiRouters(app fiber.Router) {
	initRecordRouters(app, "awards", awardshandler.Instance, nil)
}

func InitPromotionApiRouters(app fiber.Router) {
	initRecordRouters(app, "promotions", promotionshandler.Instance, nil)
}

func InitResignationApiRouters(app fiber.Router) {
	initRecordRouters(app, "resignations", resignationshandler.Instance, nil)
}

func InitTerminationApiRouters(app fiber.Router) {
	initRecordRouters(app, "terminations", terminationshandler.Instance, nil)
}

func InitTransferApiRouters(app fiber.Router) {
	initRecordRouters(app, "transfers", transfershandler.Instance, nil)
}

func InitWarningApiRouters(app fiber.Router) {
	initRecordRouters(app, "warnings", warningshandler.Instance, nil)
}

type travelOrderApiController struct {
	controllers.BaseAPIController
	provider travelordershandler.Provider
}

func InitTravelOrderApiRouters(app fiber.Router) {
	initTravelOrderRouters(app, travelordershandler.Instance)
}

func initTravelOrderRouters(app fiber.Router, provider travelordershandler.Provider) {
	controller := travelOrderApiController{provider: provider}
	app.Get("travel-orders/:id/pdf", controller.pdf)
	initRecordRouters(app, "travel-orders", provider, func(list []recordapimodels.TravelOrderView, rowCount int64) interface{} {
		return recordapimodels.TravelOrderListResponse{
			Status:       "success",
			TravelOrders: list,
			RowCount:     rowCount,
		}
	})
}

// @Summary Печатная форма
// @Tags Кадровые записи
// @Description Приказ о командировке в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 401
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/travel-orders/{id}/pdf [get]
func (c *travelOrderApiController) pdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	fileName, body, err := c.provider.PDF(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования приказа")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%v"`, fileName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
