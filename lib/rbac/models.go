package rbac

import (
	"regexp"

	"hr-records-backend/models"
)

type HTTPMethod string

const (
	GET    HTTPMethod = "GET"
	POST   HTTPMethod = "POST"
	PUT    HTTPMethod = "PUT"
	DELETE HTTPMethod = "DELETE"
)

// route разобранная строка вида "/api/v1/awards/{id} [put]"
type route struct {
	method HTTPMethod
	path   string
}

// routeTable правила одного http метода, точные пути проверяются раньше шаблонов
type routeTable struct {
	exact    map[string]models.RbacFunc
	patterns []patternRule
}

type patternRule struct {
	pattern *regexp.Regexp
	handler models.RbacFunc
}

// permissionSet права ролей по разделам, отдаются фронту
type permissionSet map[models.UserRole]map[models.Module][]models.Permission
