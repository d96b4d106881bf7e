package employeematcher

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func testRoster() []Employee {
	return []Employee{
		{ID: "1", FirstName: "Jane", LastName: "Doe", IDNo: "E100"},
		{ID: "2", FirstName: "John", LastName: "Smith", IDNo: "E200"},
	}
}

func ids(list []Employee) []string {
	result := []string{}
	for _, e := range list {
		result = append(result, e.ID)
	}
	return result
}

func TestMatch(t *testing.T) {
	t.Run(`last name exact match selects employee`, func(t *testing.T) {
		res := Match("doe", testRoster(), "")
		require.Equal(t, []string{"1"}, ids(res.Filtered))
		require.Equal(t, "1", res.SelectedID)
		require.True(t, res.Changed)
	})

	t.Run(`id number substring does not select`, func(t *testing.T) {
		res := Match("e2", testRoster(), "")
		require.Equal(t, []string{"2"}, ids(res.Filtered))
		require.Equal(t, "", res.SelectedID)
		require.False(t, res.Changed)
	})

	t.Run(`empty query returns full roster`, func(t *testing.T) {
		res := Match("", testRoster(), "")
		require.Equal(t, []string{"1", "2"}, ids(res.Filtered))
		require.False(t, res.Changed)
	})

	t.Run(`whitespace query returns full roster without selection`, func(t *testing.T) {
		res := Match(" \t  ", testRoster(), "2")
		require.Equal(t, []string{"1", "2"}, ids(res.Filtered))
		require.Equal(t, "2", res.SelectedID)
		require.False(t, res.Changed)
	})

	t.Run(`full and reversed name`, func(t *testing.T) {
		res := Match("  JOHN smith ", testRoster(), "")
		require.Equal(t, "2", res.SelectedID)
		res = Match("smith john", testRoster(), "")
		require.Equal(t, "2", res.SelectedID)
	})

	t.Run(`label form selects employee`, func(t *testing.T) {
		res := Match("Doe, Jane (E100)", testRoster(), "")
		require.Equal(t, []string{"1"}, ids(res.Filtered))
		require.Equal(t, "1", res.SelectedID)
		require.True(t, res.Changed)
	})

	t.Run(`ambiguous exact match keeps selection`, func(t *testing.T) {
		roster := append(testRoster(), Employee{ID: "3", FirstName: "Mary", LastName: "Doe", IDNo: "E300"})
		res := Match("doe", roster, "")
		require.Equal(t, []string{"1", "3"}, ids(res.Filtered))
		require.Equal(t, "", res.SelectedID)
		require.False(t, res.Changed)
	})

	t.Run(`same selection is not changed`, func(t *testing.T) {
		res := Match("doe", testRoster(), "1")
		require.Equal(t, "1", res.SelectedID)
		require.False(t, res.Changed)
	})

	t.Run(`other selection is replaced by exact match`, func(t *testing.T) {
		res := Match("e100", testRoster(), "2")
		require.Equal(t, "1", res.SelectedID)
		require.True(t, res.Changed)
	})

	t.Run(`no matches`, func(t *testing.T) {
		res := Match("zzz", testRoster(), "")
		require.True(t, res.NoMatches())
		require.NotNil(t, res.Filtered)
	})

	t.Run(`nil roster`, func(t *testing.T) {
		require.NotPanics(t, func() {
			res := Match("doe", nil, "")
			require.Empty(t, res.Filtered)
			require.False(t, res.Changed)
		})
		res := Match("", nil, "")
		require.Empty(t, res.Filtered)
	})
}

func TestFilterIdempotent(t *testing.T) {
	roster := append(testRoster(),
		Employee{ID: "3", FirstName: "Mary", LastName: "Doe", IDNo: "E300"},
		Employee{ID: "4", FirstName: "Ann", LastName: "Lee", IDNo: "X1"},
	)
	for _, q := range []string{"", " ", "doe", "e", "E1", "jo", "lee ann", "Doe, Jane (E100)", "nothing"} {
		once := Filter(q, roster)
		twice := Filter(q, once)
		require.Equal(t, ids(once), ids(twice), "query %q", q)
	}
}

func TestSelector(t *testing.T) {
	t.Run(`callback fires once for stable input`, func(t *testing.T) {
		calls := 0
		var selected Employee
		s := NewSelector("", func(e Employee) {
			calls++
			selected = e
		})
		roster := testRoster()
		for n := 0; n < 5; n++ {
			s.Apply("doe", roster)
		}
		require.Equal(t, 1, calls)
		require.Equal(t, "1", selected.ID)
		require.Equal(t, "1", s.SelectedID())
	})

	t.Run(`callback fires again for a new query`, func(t *testing.T) {
		calls := 0
		s := NewSelector("", func(e Employee) { calls++ })
		s.Apply("doe", testRoster())
		s.Apply("doe", testRoster())
		s.Apply("smith", testRoster())
		s.Apply("smith", testRoster())
		require.Equal(t, 2, calls)
		require.Equal(t, "2", s.SelectedID())
	})

	t.Run(`manual selection is respected`, func(t *testing.T) {
		calls := 0
		s := NewSelector("", func(e Employee) { calls++ })
		s.Select("1")
		s.Apply("jane", testRoster())
		require.Equal(t, 0, calls)
	})

	t.Run(`nil callback`, func(t *testing.T) {
		s := NewSelector("", nil)
		require.NotPanics(t, func() { s.Apply("doe", testRoster()) })
		require.Equal(t, "1", s.SelectedID())
	})
}

func TestDecodeRoster(t *testing.T) {
	t.Run(`legacy field names`, func(t *testing.T) {
		raw := json.RawMessage(`[{"id":1,"Fname":"Jane","Lname":"Doe","idno":"E100"},{"id":2,"Fname":"John","Lname":"Smith","idno":"E200"}]`)
		roster := DecodeRoster(raw)
		require.Equal(t, testRoster(), roster)
		res := Match("doe", roster, "")
		require.Equal(t, "1", res.SelectedID)
	})

	t.Run(`not an array`, func(t *testing.T) {
		for _, raw := range []string{``, `null`, `{}`, `"x"`, `42`, `[1,`} {
			roster := DecodeRoster(json.RawMessage(raw))
			require.NotNil(t, roster, raw)
			require.Empty(t, roster, raw)
		}
	})
}
