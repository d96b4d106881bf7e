package employeeshandler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
	xlsexport "hr-records-backend/lib/export/xls"
	filestorage "hr-records-backend/lib/file-storage"
	"hr-records-backend/lib/utils/testdb"
	apimodels "hr-records-backend/models/api"
	employeeapimodels "hr-records-backend/models/api/employee"
	dbmodels "hr-records-backend/models/db"
)

type memFiles struct {
	filestorage.Provider
	objects map[string][]byte
	counter int
}

func (m *memFiles) Upload(_ context.Context, folder, fileName string, body []byte, _ string) (string, error) {
	m.counter++
	objectPath := fmt.Sprintf("%s/%d-%s", folder, m.counter, fileName)
	m.objects[objectPath] = body
	return objectPath, nil
}

func (m *memFiles) Delete(_ context.Context, objectPath string) error {
	delete(m.objects, objectPath)
	return nil
}

func pngPhoto(t *testing.T, w, h int) *filestorage.File {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return &filestorage.File{Name: "photo.png", ContentType: "image/png", Body: buf.Bytes()}
}

func employeeData(idNo string) employeeapimodels.EmployeeData {
	return employeeapimodels.EmployeeData{IDNo: idNo, FirstName: "Jane", LastName: "Doe", Position: "Engineer"}
}

func TestEmployees(t *testing.T) {
	t.Run(`create with photo`, func(t *testing.T) {
		conn := testdb.New(t)
		files := &memFiles{objects: map[string][]byte{}}
		h := NewInstance(conn, files, xlsexport.Instance)

		id, hMsg, err := h.Create(employeeData(" E100 "), pngPhoto(t, 1024, 512))
		require.NoError(t, err)
		require.Empty(t, hMsg)

		view, err := h.Get(id)
		require.NoError(t, err)
		require.Equal(t, "E100", view.IDNo)
		require.True(t, view.IsActive)
		require.NotEmpty(t, view.PhotoURL)
		require.NotEmpty(t, view.ThumbURL)
		require.Len(t, files.objects, 2)

		thumb, err := imaging.Decode(bytes.NewReader(files.objects["employees/thumbs/2-thumb.jpg"]))
		require.NoError(t, err)
		require.Equal(t, 256, thumb.Bounds().Dx())
		require.Equal(t, 128, thumb.Bounds().Dy())

		_, hMsg, err = h.Create(employeeData("E100"), nil)
		require.NoError(t, err)
		require.Contains(t, hMsg, "E100")

		_, _, err = h.Create(employeeData("E200"), &filestorage.File{Name: "photo.txt", Body: []byte("x")})
		var errs apimodels.ValidationErrors
		require.ErrorAs(t, err, &errs)
		require.Contains(t, errs, "photo")
	})

	t.Run(`update checks department and line`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewInstance(conn, &memFiles{objects: map[string][]byte{}}, xlsexport.Instance)
		production := testdb.Department(t, conn, "Production")
		employee := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)

		request := employeeData("E100")
		request.DepartmentID = "missing"
		hMsg, err := h.Update(employee.ID, request, nil)
		require.NoError(t, err)
		require.Equal(t, "Подразделение не найдено", hMsg)

		request.DepartmentID = production.ID
		inactive := false
		request.IsActive = &inactive
		hMsg, err = h.Update(employee.ID, request, nil)
		require.NoError(t, err)
		require.Empty(t, hMsg)

		view, err := h.Get(employee.ID)
		require.NoError(t, err)
		require.Equal(t, "Production", view.DepartmentName)
		require.False(t, view.IsActive)

		_, err = h.Update("missing", request, nil)
		require.ErrorIs(t, err, dbmodels.ErrNotFound)
	})

	t.Run(`delete refused when employee has records`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewInstance(conn, &memFiles{objects: map[string][]byte{}}, xlsexport.Instance)
		withRecords := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
		free := testdb.Employee(t, conn, "E200", "John", "Smith", true)
		require.NoError(t, conn.Create(&dbmodels.Warning{
			EmployeeRef: dbmodels.EmployeeRef{EmployeeID: withRecords.ID},
			Workflow:    dbmodels.NewWorkflow(""),
			Subject:     "Late",
		}).Error)

		hMsg, err := h.Delete(withRecords.ID)
		require.NoError(t, err)
		require.Contains(t, hMsg, "Jane Doe")

		hMsg, err = h.Delete(free.ID)
		require.NoError(t, err)
		require.Empty(t, hMsg)
		_, err = h.Get(free.ID)
		require.ErrorIs(t, err, dbmodels.ErrNotFound)
	})

	t.Run(`match`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewInstance(conn, &memFiles{objects: map[string][]byte{}}, xlsexport.Instance)
		jane := testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
		testdb.Employee(t, conn, "E200", "John", "Doe", false)

		res, err := h.Match(employeeapimodels.MatchRequest{Query: "doe"})
		require.NoError(t, err)
		require.Len(t, res.Filtered, 1)
		require.Equal(t, jane.ID, res.SelectedID)
		require.True(t, res.Changed)

		res, err = h.Match(employeeapimodels.MatchRequest{
			Query:     "e2",
			CurrentID: "7",
			Roster:    json.RawMessage(`[{"id":7,"Fname":"Ann","Lname":"Lee","idno":"E2"}]`),
		})
		require.NoError(t, err)
		require.Equal(t, "7", res.SelectedID)
		require.False(t, res.Changed)

		res, err = h.Match(employeeapimodels.MatchRequest{Query: "doe", Roster: json.RawMessage(`{}`)})
		require.NoError(t, err)
		require.True(t, res.NoMatches)
	})

	t.Run(`export`, func(t *testing.T) {
		conn := testdb.New(t)
		h := NewInstance(conn, &memFiles{objects: map[string][]byte{}}, xlsexport.Instance)
		testdb.Employee(t, conn, "E100", "Jane", "Doe", true)
		buf, err := h.Export(employeeapimodels.EmployeeFilter{})
		require.NoError(t, err)
		require.NotZero(t, buf.Len())
	})
}
