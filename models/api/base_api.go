package apimodels

import "strings"

// StorageURL префикс публичных ссылок на файлы хранилища
var StorageURL = "/storage"

func FileURL(objectPath string) string {
	if objectPath == "" {
		return ""
	}
	return strings.TrimSuffix(StorageURL, "/") + "/" + strings.TrimPrefix(objectPath, "/")
}

type Response struct {
	Status  string      `json:"status"`            //результат обработки fail/success
	Message string      `json:"message,omitempty"` //сообщение ошибки
	Data    interface{} `json:"data,omitempty"`    //данные ответа
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count"` //для списков, общее кол-во записей, учитывая фильтр (если он есть)
}

// ValidationResponse ответ 422 с ошибками по полям
type ValidationResponse struct {
	Response
	Errors ValidationErrors `json:"errors"`
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewValidationError(errs ValidationErrors) ValidationResponse {
	return ValidationResponse{
		Response: NewError(errs.Error()),
		Errors:   errs,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit" query:"limit"` // Записей на странице
	Page  int `json:"page" query:"page"`   // Страница (1,2,3..)
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 20
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 500 {
		limit = 500
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}
