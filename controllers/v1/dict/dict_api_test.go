package dict

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	departmentprovider "hr-records-backend/lib/dicts/department"
	departmentstore "hr-records-backend/lib/dicts/department/store"
	lineprovider "hr-records-backend/lib/dicts/line"
	"hr-records-backend/lib/utils/testdb"
)

type apiResponse struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Data    json.RawMessage            `json:"data"`
	Errors  map[string]json.RawMessage `json:"errors"`
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, apiResponse) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var result apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

func TestDepartmentApi(t *testing.T) {
	conn := testdb.New(t)
	app := fiber.New()
	initDepartmentRouters(app, departmentprovider.NewInstance(departmentstore.NewInstance(conn)))

	status, resp := call(t, app, http.MethodPost, "/departments", map[string]string{"name": "Production"})
	require.Equal(t, http.StatusOK, status, resp.Message)
	var id string
	require.NoError(t, json.Unmarshal(resp.Data, &id))

	status, resp = call(t, app, http.MethodPost, "/departments", map[string]string{"name": ""})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Contains(t, resp.Errors, "name")

	status, resp = call(t, app, http.MethodPost, "/departments", map[string]string{"name": "Production"})
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, resp.Message)

	status, _ = call(t, app, http.MethodPut, "/departments/"+id, map[string]string{"name": "Assembly"})
	require.Equal(t, http.StatusOK, status)

	status, resp = call(t, app, http.MethodGet, "/departments?search=assem", nil)
	require.Equal(t, http.StatusOK, status)
	var list []map[string]string
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	require.Len(t, list, 1)
	require.Equal(t, "Assembly", list[0]["name"])

	status, _ = call(t, app, http.MethodGet, "/departments/"+uuid.New().String(), nil)
	require.Equal(t, http.StatusNotFound, status)

	employee := testdb.Employee(t, conn, "E2", "John", "Smith", true)
	require.NoError(t, conn.Model(&employee).Update("department_id", id).Error)
	status, resp = call(t, app, http.MethodDelete, "/departments/"+id, nil)
	require.Equal(t, http.StatusBadRequest, status)
	require.NotEmpty(t, resp.Message)

	require.NoError(t, conn.Model(&employee).Update("department_id", nil).Error)
	status, _ = call(t, app, http.MethodDelete, "/departments/"+id, nil)
	require.Equal(t, http.StatusOK, status)
}

func TestLineApi(t *testing.T) {
	t.Run(`disabled`, func(t *testing.T) {
		app := fiber.New()
		initLineRouters(app, lineprovider.NewInstance(testdb.New(t), false))
		status, resp := call(t, app, http.MethodGet, "/lines", nil)
		require.Equal(t, http.StatusServiceUnavailable, status)
		require.Equal(t, "fail", resp.Status)
	})

	t.Run(`enabled`, func(t *testing.T) {
		conn := testdb.New(t)
		department := testdb.Department(t, conn, "Production")
		app := fiber.New()
		initLineRouters(app, lineprovider.NewInstance(conn, true))

		status, resp := call(t, app, http.MethodPost, "/lines", map[string]string{"department_id": department.ID, "name": "Line 1"})
		require.Equal(t, http.StatusOK, status, resp.Message)
		var id string
		require.NoError(t, json.Unmarshal(resp.Data, &id))

		status, resp = call(t, app, http.MethodPost, "/lines", map[string]string{"name": "Line 2"})
		require.Equal(t, http.StatusUnprocessableEntity, status)
		require.Contains(t, resp.Errors, "department_id")

		status, resp = call(t, app, http.MethodGet, "/lines?department_id="+department.ID, nil)
		require.Equal(t, http.StatusOK, status)
		var list []map[string]interface{}
		require.NoError(t, json.Unmarshal(resp.Data, &list))
		require.Len(t, list, 1)

		status, _ = call(t, app, http.MethodDelete, "/lines/"+id, nil)
		require.Equal(t, http.StatusOK, status)
	})
}
