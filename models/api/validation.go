package apimodels

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

var fieldMessages = map[string]string{
	"required": "поле обязательно для заполнения",
	"email":    "почта имеет неправильный формат",
	"gte":      "значение должно быть не меньше %v",
	"gt":       "значение должно быть больше %v",
	"lte":      "значение должно быть не больше %v",
	"max":      "превышена максимальная длина %v",
	"oneof":    "допустимые значения: %v",
	"datetime": "дата/время имеет неправильный формат",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationErrors ошибки валидации по полям запроса
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(v[field], ", ")))
	}
	return "ошибка проверки данных: " + strings.Join(parts, "; ")
}

// OrNil nil если ошибок нет
func (v ValidationErrors) OrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// ValidateStruct проверка по тегам validate, ошибки собираются по json-именам полей
func ValidateStruct(data interface{}) ValidationErrors {
	result := ValidationErrors{}
	err := validate.Struct(data)
	if err == nil {
		return result
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Add("_", err.Error())
		return result
	}
	for _, fe := range fieldErrs {
		result.Add(fe.Field(), fieldMessage(fe))
	}
	return result
}

func fieldMessage(fe validator.FieldError) string {
	tpl, ok := fieldMessages[fe.Tag()]
	if !ok {
		return "некорректное значение"
	}
	if strings.Contains(tpl, "%v") {
		return fmt.Sprintf(tpl, fe.Param())
	}
	return tpl
}

// ParseDate разбор даты формата 2006-01-02, пустая строка - nil
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, errors.Errorf("дата %q имеет неправильный формат, ожидается ГГГГ-ММ-ДД", value)
	}
	return &t, nil
}

// CheckDate проверка обязательной даты с добавлением ошибки по полю
func (v ValidationErrors) CheckDate(field, value string, required bool) *time.Time {
	if strings.TrimSpace(value) == "" {
		if required {
			v.Add(field, fieldMessages["required"])
		}
		return nil
	}
	t, err := ParseDate(value)
	if err != nil {
		v.Add(field, err.Error())
		return nil
	}
	return t
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}
