package apiv1

import (
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"hr-records-backend/controllers"
	filestorage "hr-records-backend/lib/file-storage"
	apimodels "hr-records-backend/models/api"
)

type storageApiController struct {
	controllers.BaseAPIController
	provider filestorage.Provider
}

// InitStorageRouters раздача файлов хранилища, монтируется в корень приложения
func InitStorageRouters(app fiber.Router, prefix string) {
	initStorageRouters(app, prefix, filestorage.Instance)
}

func initStorageRouters(app fiber.Router, prefix string, provider filestorage.Provider) {
	controller := storageApiController{provider: provider}
	app.Get(strings.TrimSuffix(prefix, "/")+"/*", controller.get)
}

// @Summary Файл
// @Tags Хранилище
// @Description Вложение или фото по пути объекта
// @Param   path          		path    string  				    	true         "путь объекта"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /storage/{path} [get]
func (c *storageApiController) get(ctx *fiber.Ctx) error {
	objectPath := strings.TrimPrefix(path.Clean("/"+ctx.Params("*")), "/")
	if objectPath == "" || objectPath == "." {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан файл"))
	}

	obj, err := c.provider.Get(ctx.UserContext(), objectPath)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла")
	}
	if obj == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("файл не найден"))
	}
	if obj.ContentType != "" {
		ctx.Set(fiber.HeaderContentType, obj.ContentType)
	}
	ctx.Set(fiber.HeaderCacheControl, "private, max-age=86400")
	return ctx.SendStream(obj.Body, int(obj.Size))
}
