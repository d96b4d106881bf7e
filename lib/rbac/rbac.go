package rbac

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"hr-records-backend/models"
)

type Provider interface {
	GetRuleFunc(method, path string) (models.RbacFunc, bool)
	RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc)
	GetPermissions(role models.UserRole) map[models.Module][]models.Permission
}

var Instance Provider

func NewHandler() {
	i := &impl{
		tables:      map[HTTPMethod]*routeTable{},
		permissions: permissionSet{},
	}
	i.initRules()
	Instance = i
}

type impl struct {
	tables      map[HTTPMethod]*routeTable
	permissions permissionSet
}

func (i *impl) GetRuleFunc(method, path string) (models.RbacFunc, bool) {
	table, ok := i.tables[HTTPMethod(strings.ToUpper(method))]
	if !ok {
		return nil, false
	}
	return table.find(normalizePath(path))
}

// RegisterRule паникует на ошибке в шаблоне и на повторной регистрации точного пути
func (i *impl) RegisterRule(module models.Module, permission models.Permission, roles []models.UserRole, swaggerPattern string, handler models.RbacFunc) {
	r, err := parseSwaggerPattern(swaggerPattern)
	if err != nil {
		panic(err.Error())
	}
	if handler == nil {
		handler = AllowByRoleFunc(roles)
	}
	table, ok := i.tables[r.method]
	if !ok {
		table = &routeTable{exact: map[string]models.RbacFunc{}}
		i.tables[r.method] = table
	}
	if err := table.add(r.path, handler); err != nil {
		panic(errors.Wrapf(err, "правило %v", swaggerPattern).Error())
	}
	i.permissions.grant(roles, module, permission)
}

func (i *impl) GetPermissions(role models.UserRole) map[models.Module][]models.Permission {
	return i.permissions.of(role)
}

func (t *routeTable) add(path string, handler models.RbacFunc) error {
	if !strings.Contains(path, "{") {
		if _, exists := t.exact[path]; exists {
			return errors.New("уже зарегистрировано")
		}
		t.exact[path] = handler
		return nil
	}
	pattern, err := compileRoute(path)
	if err != nil {
		return err
	}
	t.patterns = append(t.patterns, patternRule{pattern: pattern, handler: handler})
	return nil
}

func (t *routeTable) find(path string) (models.RbacFunc, bool) {
	if handler, ok := t.exact[path]; ok {
		return handler, true
	}
	for _, rule := range t.patterns {
		if rule.pattern.MatchString(path) {
			return rule.handler, true
		}
	}
	return nil, false
}

func (p permissionSet) grant(roles []models.UserRole, module models.Module, permission models.Permission) {
	for _, role := range roles {
		modules, ok := p[role]
		if !ok {
			modules = map[models.Module][]models.Permission{}
			p[role] = modules
		}
		if !slices.Contains(modules[module], permission) {
			modules[module] = append(modules[module], permission)
		}
	}
}

// of копия прав роли, nil для роли без прав
func (p permissionSet) of(role models.UserRole) map[models.Module][]models.Permission {
	modules, ok := p[role]
	if !ok {
		return nil
	}
	result := make(map[models.Module][]models.Permission, len(modules))
	for module, permissions := range modules {
		result[module] = slices.Clone(permissions)
	}
	return result
}

// compileRoute сегмент {param} совпадает с любым непустым сегментом пути
func compileRoute(path string) (*regexp.Regexp, error) {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for n, segment := range segments {
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			segments[n] = `[^/]+`
			continue
		}
		if strings.ContainsAny(segment, "{}") {
			return nil, errors.Errorf("некорректный параметр в сегменте %q", segment)
		}
		segments[n] = regexp.QuoteMeta(segment)
	}
	return regexp.Compile("^/" + strings.Join(segments, "/") + "$")
}

func AllowFunc() models.RbacFunc {
	return func(userID string, role models.UserRole, uri string) bool {
		return true
	}
}

func AllowByRoleFunc(accessRoles []models.UserRole) models.RbacFunc {
	allowMap := map[models.UserRole]bool{}
	for _, role := range accessRoles {
		allowMap[role] = true
	}
	return func(userID string, role models.UserRole, uri string) bool {
		return allowMap[role]
	}
}

// parseSwaggerPattern разбор строки "/api/v1/users [post]" как в аннотации @router
func parseSwaggerPattern(pattern string) (route, error) {
	pattern = strings.TrimSpace(pattern)
	open := strings.LastIndex(pattern, "[")
	if open == -1 || !strings.HasSuffix(pattern, "]") {
		return route{}, errors.Errorf("не указан метод в шаблоне %q", pattern)
	}
	method := strings.TrimSpace(pattern[open+1 : len(pattern)-1])
	if method == "" {
		return route{}, errors.Errorf("не указан метод в шаблоне %q", pattern)
	}
	return route{
		method: HTTPMethod(strings.ToUpper(method)),
		path:   normalizePath(strings.TrimSpace(pattern[:open])),
	}, nil
}

func normalizePath(path string) string {
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	return "/" + strings.Join(parts, "/")
}
