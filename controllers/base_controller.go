package controllers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	authhandler "hr-records-backend/lib/auth"
	lineprovider "hr-records-backend/lib/dicts/line"
	filestorage "hr-records-backend/lib/file-storage"
	"hr-records-backend/middleware"
	apimodels "hr-records-backend/models/api"
	dbmodels "hr-records-backend/models/db"
)

const maxFileSize = 20 * 1024 * 1024

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("не указан идентификатор")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New("неверный формат идентификатора")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithFields(log.Fields{
		"method":  ctx.Method(),
		"path":    ctx.Path(),
		"user_id": middleware.GetUserID(ctx),
	})
}

// FormFile файл из multipart запроса, nil если файл не передан
func (c *BaseAPIController) FormFile(ctx *fiber.Ctx, field string) (*filestorage.File, error) {
	if !strings.HasPrefix(ctx.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := ctx.MultipartForm()
	if err != nil {
		log.WithError(err).Error("ошибка разбора multipart запроса")
		return nil, errors.New("не удалось получить файл из запроса")
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	header := files[0]
	if header.Size > maxFileSize {
		return nil, apimodels.ValidationErrors{field: {"размер файла превышает 20 МБ"}}
	}
	file, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "ошибка открытия файла")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка чтения файла")
	}
	return &filestorage.File{
		Name:        header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Body:        body,
	}, nil
}

// SendError ответ по типу ошибки
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, message string) error {
	var validationErrs apimodels.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewValidationError(validationErrs))
	case errors.Is(err, dbmodels.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(dbmodels.ErrNotFound.Error()))
	case errors.Is(err, authhandler.ErrUnauthorized):
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, lineprovider.ErrDisabled), errors.Is(err, filestorage.ErrNotConfigured):
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(message)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(message))
}

// SendHMsg отказ по бизнес-правилу
func (c *BaseAPIController) SendHMsg(ctx *fiber.Ctx, hMsg string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(hMsg))
}

// SendValidation ответ 422, если есть ошибки проверки
func (c *BaseAPIController) SendValidation(ctx *fiber.Ctx, errs apimodels.ValidationErrors) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewValidationError(errs))
}
