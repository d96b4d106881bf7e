package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-records-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pattern parse`, func(t *testing.T) {
		r, err := parseSwaggerPattern("/api/v1/awards/{id}/status [post]")
		require.NoError(t, err)
		require.Equal(t, POST, r.method)
		pattern, err := compileRoute(r.path)
		require.NoError(t, err)

		require.True(t, pattern.MatchString("/api/v1/awards/123-321/status"))
		require.False(t, pattern.MatchString("/api/v1/awards/status"))
		require.False(t, pattern.MatchString("/api/v1/awards/1/2/status"))

		_, err = parseSwaggerPattern("/api/v1/awards")
		require.Error(t, err)
		_, err = parseSwaggerPattern("/api/v1/awards []")
		require.Error(t, err)
		_, err = compileRoute("/api/v1/awards/x{id}")
		require.Error(t, err)
	})

	t.Run(`normalize path`, func(t *testing.T) {
		require.Equal(t, "/", normalizePath(""))
		require.Equal(t, "/api/v1/awards", normalizePath("api//v1/awards/"))
	})

	t.Run(`duplicate exact rule`, func(t *testing.T) {
		i := &impl{tables: map[HTTPMethod]*routeTable{}, permissions: permissionSet{}}
		i.RegisterRule(models.AwardModule, models.ViewPermission, AllRoles, "/api/v1/awards [get]", nil)
		require.Panics(t, func() {
			i.RegisterRule(models.AwardModule, models.ViewPermission, AllRoles, "/api/v1/awards/ [get]", nil)
		})
	})

	t.Run(`rules`, func(t *testing.T) {
		NewHandler()
		check := func(method, path string, role models.UserRole) bool {
			handler, found := Instance.GetRuleFunc(method, path)
			require.True(t, found, "%s %s", method, path)
			return handler("user-1", role, path)
		}

		for _, resource := range []string{"awards", "travel-orders"} {
			prefix := "/api/v1/" + resource
			require.True(t, check("GET", prefix+"/list", models.EmployeeRole))
			require.True(t, check("GET", prefix+"/abc/history/", models.ManagerRole))
			require.True(t, check("POST", prefix, models.HRRole))
			require.False(t, check("POST", prefix, models.ManagerRole))
			require.True(t, check("POST", prefix+"/abc", models.HRRole))
			require.False(t, check("DELETE", prefix+"/abc", models.EmployeeRole))
			require.True(t, check("POST", prefix+"/abc/status", models.ManagerRole))
			require.False(t, check("POST", prefix+"/abc/status", models.HRRole))
		}

		require.True(t, check("POST", "/api/v1/employees/match", models.EmployeeRole))
		require.False(t, check("POST", "/api/v1/employees/abc", models.EmployeeRole))
		require.False(t, check("POST", "/api/v1/departments", models.HRRole))

		_, found := Instance.GetRuleFunc("GET", "/api/v1/auth/me")
		require.False(t, found)

		permissions := Instance.GetPermissions(models.ManagerRole)
		require.Contains(t, permissions[models.AwardModule], models.ApprovePermission)
		require.NotContains(t, permissions[models.AwardModule], models.CreatePermission)

		permissions[models.AwardModule] = nil
		require.NotEmpty(t, Instance.GetPermissions(models.ManagerRole)[models.AwardModule])
		require.Nil(t, Instance.GetPermissions(models.UserRole("guest")))
	})
}
