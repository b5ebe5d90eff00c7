package query_test

import (
	"fmt"
	"math"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID       string
	Name     string
	Email    string
	Status   string
	Method   string
	Date     string
	Priority int
}

var rowSchema = query.Schema[row]{
	Resource: "row",
	Fields: []query.Field[row]{
		query.Exact("status", query.Attr[row]{Key: "status", Get: func(r row) string { return r.Status }}),
		query.Membership("method", query.Attr[row]{Key: "method", Get: func(r row) string { return r.Method }}),
		query.From("startDate", query.Attr[row]{Key: "date", Get: func(r row) string { return r.Date }}),
		query.Until("endDate", query.Attr[row]{Key: "date", Get: func(r row) string { return r.Date }}),
		query.Search("q",
			query.Attr[row]{Key: "name", Get: func(r row) string { return r.Name }},
			query.Attr[row]{Key: "email", Get: func(r row) string { return r.Email }},
		),
	},
}

func ids(rows []row) []string {
	out := []string{}
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func makeRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("r%d", i+1)}
	}
	return rows
}

func TestPaginate(t *testing.T) {
	type testCase struct {
		Description string
		Total       int
		Page        int
		Limit       int
		Expected    query.Pagination
		DataLen     int
	}

	var testCases = []testCase{
		{
			Description: "empty collection has zero pages",
			Total:       0, Page: 1, Limit: 20,
			Expected: query.Pagination{Total: 0, Page: 1, Limit: 20, TotalPages: 0},
			DataLen:  0,
		},
		{
			Description: "middle page has next and prev",
			Total:       45, Page: 2, Limit: 20,
			Expected: query.Pagination{Total: 45, Page: 2, Limit: 20, TotalPages: 3, HasNext: true, HasPrev: true},
			DataLen:  20,
		},
		{
			Description: "last partial page",
			Total:       45, Page: 3, Limit: 20,
			Expected: query.Pagination{Total: 45, Page: 3, Limit: 20, TotalPages: 3, HasPrev: true},
			DataLen:  5,
		},
		{
			Description: "exact multiple of limit",
			Total:       40, Page: 2, Limit: 20,
			Expected: query.Pagination{Total: 40, Page: 2, Limit: 20, TotalPages: 2, HasPrev: true},
			DataLen:  20,
		},
		{
			Description: "out of range page returns empty data",
			Total:       5, Page: 4, Limit: 2,
			Expected: query.Pagination{Total: 5, Page: 4, Limit: 2, TotalPages: 3, HasPrev: true},
			DataLen:  0,
		},
		{
			Description: "page below one is clamped",
			Total:       5, Page: -3, Limit: 2,
			Expected: query.Pagination{Total: 5, Page: 1, Limit: 2, TotalPages: 3, HasNext: true},
			DataLen:  2,
		},
		{
			Description: "largest page number returns empty data",
			Total:       5, Page: math.MaxInt, Limit: 2,
			Expected: query.Pagination{Total: 5, Page: math.MaxInt, Limit: 2, TotalPages: 3, HasPrev: true},
			DataLen:  0,
		},
		{
			Description: "largest limit holds everything on page one",
			Total:       5, Page: 1, Limit: math.MaxInt,
			Expected: query.Pagination{Total: 5, Page: 1, Limit: math.MaxInt, TotalPages: 1},
			DataLen:  5,
		},
		{
			Description: "largest limit past page one is empty",
			Total:       5, Page: 2, Limit: math.MaxInt,
			Expected: query.Pagination{Total: 5, Page: 2, Limit: math.MaxInt, TotalPages: 1, HasPrev: true},
			DataLen:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			pg, err := query.Paginate(makeRows(tc.Total), tc.Page, tc.Limit)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, pg.Pagination)
			assert.Len(t, pg.Data, tc.DataLen)
			assert.NotNil(t, pg.Data)
		})
	}

	t.Run("limit below one fails fast", func(t *testing.T) {
		_, err := query.Paginate(makeRows(3), 1, 0)
		assert.True(t, apierror.IsKind(err, apierror.KindInvalid))
	})
}

func TestPaginationOffset(t *testing.T) {
	cases := []struct {
		Description string
		Pagination  query.Pagination
		Expected    int
	}{
		{Description: "first page", Pagination: query.Pagination{Total: 45, Page: 1, Limit: 20, TotalPages: 3}, Expected: 0},
		{Description: "last page", Pagination: query.Pagination{Total: 45, Page: 3, Limit: 20, TotalPages: 3}, Expected: 40},
		{Description: "past the end", Pagination: query.Pagination{Total: 45, Page: 4, Limit: 20, TotalPages: 3}, Expected: 45},
		{Description: "largest page number", Pagination: query.Pagination{Total: 45, Page: math.MaxInt, Limit: 20, TotalPages: 3}, Expected: 45},
		{Description: "empty collection", Pagination: query.Pagination{Page: 1, Limit: 20}, Expected: 0},
	}
	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.Pagination.Offset())
		})
	}
}

func TestPaginationMath(t *testing.T) {
	for total := 0; total <= 23; total++ {
		for limit := 1; limit <= 7; limit++ {
			for page := 1; page <= 6; page++ {
				pg, err := query.Paginate(makeRows(total), page, limit)
				require.NoError(t, err)

				wantPages := (total + limit - 1) / limit
				wantLen := total - (page-1)*limit
				if wantLen < 0 {
					wantLen = 0
				}
				if wantLen > limit {
					wantLen = limit
				}

				assert.Equal(t, wantPages, pg.Pagination.TotalPages)
				assert.Equal(t, page < wantPages, pg.Pagination.HasNext)
				assert.Equal(t, page > 1, pg.Pagination.HasPrev)
				assert.Len(t, pg.Data, wantLen)
			}
		}
	}
}

func TestPaginateDoesNotAlias(t *testing.T) {
	rows := makeRows(4)
	pg, err := query.Paginate(rows, 1, 2)
	require.NoError(t, err)

	pg.Data[0].Name = "changed"
	assert.Equal(t, "", rows[0].Name)
}

func TestFilter(t *testing.T) {
	rows := []row{
		{ID: "1", Name: "김철수", Email: "a@example.com", Status: "active", Method: "card", Date: "2024-01-10"},
		{ID: "2", Name: "Lee", Email: "KIM@example.com", Status: "active", Method: "transfer", Date: "2024-02-10"},
		{ID: "3", Name: "Park", Email: "c@example.com", Status: "dormant", Method: "card", Date: "2024-03-10"},
		{ID: "4", Name: "김영희", Email: "d@example.com", Status: "dormant", Method: "points", Date: "2024-04-10"},
		{ID: "5", Name: "Choi", Email: "e@example.com", Status: "left", Method: "transfer", Date: "2024-05-10T09:00:00Z"},
	}

	type testCase struct {
		Description string
		Criteria    query.Criteria
		Expected    []string
	}

	var testCases = []testCase{
		{
			Description: "empty criteria keeps everything",
			Criteria:    query.Criteria{},
			Expected:    []string{"1", "2", "3", "4", "5"},
		},
		{
			Description: "zero criterion is no constraint",
			Criteria:    query.Criteria{"status": query.Eq(""), "method": query.In()},
			Expected:    []string{"1", "2", "3", "4", "5"},
		},
		{
			Description: "exact match",
			Criteria:    query.Criteria{"status": query.Eq("dormant")},
			Expected:    []string{"3", "4"},
		},
		{
			Description: "membership is a union",
			Criteria:    query.Criteria{"method": query.In("points", "transfer")},
			Expected:    []string{"2", "4", "5"},
		},
		{
			Description: "criteria are combined with AND",
			Criteria: query.Criteria{
				"status": query.Eq("active"),
				"method": query.In("card"),
			},
			Expected: []string{"1"},
		},
		{
			Description: "search is case insensitive across fields",
			Criteria:    query.Criteria{"q": query.Contains("kim")},
			Expected:    []string{"2"},
		},
		{
			Description: "search with hangul",
			Criteria:    query.Criteria{"q": query.Contains("김")},
			Expected:    []string{"1", "4"},
		},
		{
			Description: "scoped search reads only the scoped field",
			Criteria:    query.Criteria{"q": query.Contains("example").WithScope("name")},
			Expected:    []string{},
		},
		{
			Description: "inclusive date range",
			Criteria: query.Criteria{
				"startDate": query.Eq("2024-02-10"),
				"endDate":   query.Eq("2024-05-10"),
			},
			Expected: []string{"2", "3", "4", "5"},
		},
		{
			Description: "unknown criteria are ignored",
			Criteria:    query.Criteria{"nope": query.Eq("x")},
			Expected:    []string{"1", "2", "3", "4", "5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got := query.Filter(rows, rowSchema, tc.Criteria)
			if diff := cmp.Diff(tc.Expected, ids(got)); diff != "" {
				t.Errorf("unexpected ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterOverlap(t *testing.T) {
	// two records match A, three match B, one overlaps.
	rows := []row{
		{ID: "1", Status: "a", Method: "x"},
		{ID: "2", Status: "a", Method: "b"},
		{ID: "3", Status: "z", Method: "b"},
		{ID: "4", Status: "z", Method: "b"},
		{ID: "5", Status: "z", Method: "y"},
	}
	got := query.Filter(rows, rowSchema, query.Criteria{
		"status": query.Eq("a"),
		"method": query.In("b"),
	})
	assert.Equal(t, []string{"2"}, ids(got))
}

func TestFilterPurity(t *testing.T) {
	rows := []row{
		{ID: "1", Status: "a"},
		{ID: "2", Status: "b"},
		{ID: "3", Status: "a"},
	}
	snapshot := append([]row(nil), rows...)
	cr := query.Criteria{"status": query.Eq("a")}

	once := query.Filter(rows, rowSchema, cr)
	twice := query.Filter(once, rowSchema, cr)
	again := query.Filter(rows, rowSchema, cr)

	assert.Equal(t, once, twice)
	assert.Equal(t, once, again)
	assert.Equal(t, snapshot, rows)

	all := query.Filter(rows, rowSchema, nil)
	assert.Equal(t, rows, all)
	all[0].ID = "mutated"
	assert.Equal(t, "1", rows[0].ID)
}

func TestRunOrdersBeforeFiltering(t *testing.T) {
	schema := rowSchema
	schema.Order = func(a, b row) int { return b.Priority - a.Priority }

	rows := []row{
		{ID: "1", Priority: 1, Status: "a"},
		{ID: "2", Priority: 5, Status: "a"},
		{ID: "3", Priority: 5, Status: "b"},
		{ID: "4", Priority: 3, Status: "a"},
	}
	pg, err := query.Run(rows, schema, query.NewParams(1, 2, query.Criteria{"status": query.Eq("a")}))
	require.NoError(t, err)

	assert.Equal(t, []string{"2", "4"}, ids(pg.Data))
	assert.Equal(t, 3, pg.Pagination.Total)
	assert.Equal(t, "1", rows[0].ID)
}

func TestValuesAndDecode(t *testing.T) {
	p := query.NewParams(2, 30, query.Criteria{
		"status": query.Eq("active"),
		"method": query.In("card", "transfer"),
		"q":      query.Contains("kim").WithScope("email"),
	})

	q := p.Values()
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "30", q.Get("limit"))
	assert.Equal(t, []string{"card", "transfer"}, q["method"])
	assert.Equal(t, "email", q.Get(query.ScopeParam))

	decoded, err := query.ParseParams(q, rowSchema)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestParseParamsRejectsNonNumeric(t *testing.T) {
	_, err := query.ParseParams(url.Values{"page": {"two"}}, rowSchema)
	assert.True(t, apierror.IsKind(err, apierror.KindInvalid))
}

func TestParseParamsDefaults(t *testing.T) {
	cases := []struct {
		Description string
		Query       url.Values
		Page        int
		Limit       int
		Valid       bool
	}{
		{Description: "absent page and limit", Query: url.Values{}, Page: query.DefaultPage, Limit: query.DefaultLimit, Valid: true},
		{Description: "empty limit", Query: url.Values{"limit": {""}}, Page: query.DefaultPage, Limit: query.DefaultLimit, Valid: true},
		{Description: "explicit values", Query: url.Values{"page": {"3"}, "limit": {"7"}}, Page: 3, Limit: 7, Valid: true},
		{Description: "zero page is kept for clamping", Query: url.Values{"page": {"0"}}, Page: 0, Limit: query.DefaultLimit, Valid: true},
		{Description: "zero limit", Query: url.Values{"limit": {"0"}}},
		{Description: "negative limit", Query: url.Values{"limit": {"-1"}}},
	}

	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			p, err := query.ParseParams(tc.Query, rowSchema)
			if !tc.Valid {
				assert.True(t, apierror.IsKind(err, apierror.KindInvalid), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Page, p.Page)
			assert.Equal(t, tc.Limit, p.Limit)
		})
	}
}

func TestDecodeSelectors(t *testing.T) {
	schema := rowSchema
	schema.Fields = append([]query.Field[row]{}, rowSchema.Fields...)
	schema.Fields[4] = schema.Fields[4].WithLabels(map[string]string{"이메일": "email"})

	t.Run("all is dropped and labels resolve", func(t *testing.T) {
		cr := schema.Decode(url.Values{
			"status":         {query.AllValues},
			"method":         {query.AllValues, "card"},
			"startDate":      {query.AllValues},
			"q":              {"kim"},
			query.ScopeParam: {"이메일"},
		})
		assert.Equal(t, query.Criteria{
			"method": {Values: []string{"card"}},
			"q":      {Values: []string{"kim"}, Scope: "email"},
		}, cr)
		assert.NoError(t, schema.Validate(cr))
	})

	t.Run("all scope searches every source", func(t *testing.T) {
		cr := schema.Decode(url.Values{"q": {"kim"}, query.ScopeParam: {query.AllValues}})
		assert.Equal(t, query.Criteria{"q": {Values: []string{"kim"}}}, cr)
	})

	t.Run("labels are accepted on criteria built in code", func(t *testing.T) {
		cr := query.Criteria{"q": query.Contains("example").WithScope("이메일")}
		assert.NoError(t, schema.Validate(cr))
		assert.Equal(t, "email", schema.Fields[4].Scoped("이메일")[0].Key)
	})

	t.Run("unknown label is invalid", func(t *testing.T) {
		cr := schema.Decode(url.Values{"q": {"kim"}, query.ScopeParam: {"전화번호"}})
		assert.True(t, apierror.IsKind(schema.Validate(cr), apierror.KindInvalid))
	})
}

func TestSchemaValidateAllowedValues(t *testing.T) {
	schema := query.Schema[row]{
		Resource: "row",
		Fields: []query.Field[row]{
			query.Exact("status", query.Attr[row]{Key: "status", Get: func(r row) string { return r.Status }}).OneOf("a", "b"),
			query.Membership("method", query.Attr[row]{Key: "method", Get: func(r row) string { return r.Method }}).OneOf("card", "transfer"),
		},
	}

	assert.NoError(t, schema.Validate(query.Criteria{"status": query.Eq("a"), "method": query.In("card", "transfer")}))
	assert.NoError(t, schema.Validate(query.Criteria{}))

	err := schema.Validate(query.Criteria{"status": query.Eq("z"), "method": query.In("card", "cash")})
	require.True(t, apierror.IsKind(err, apierror.KindInvalid))
	assert.Contains(t, err.Error(), `status: unknown value "z"`)
	assert.Contains(t, err.Error(), `method: unknown value "cash"`)
}

func TestParamsDefaults(t *testing.T) {
	p := query.Params{}
	p.AssignDefault()
	assert.Equal(t, query.DefaultPage, p.Page)
	assert.Equal(t, query.DefaultLimit, p.Limit)
	assert.NotNil(t, p.Criteria)

	p = query.Params{Page: 1, Limit: -5}
	assert.Error(t, p.Validate())
}

func TestSchemaValidate(t *testing.T) {
	assert.NoError(t, rowSchema.Validate(query.Criteria{"startDate": query.Eq("2024-01-01")}))

	err := rowSchema.Validate(query.Criteria{
		"startDate": query.Eq("not-a-date"),
		"q":         query.Contains("x").WithScope("phone"),
	})
	assert.True(t, apierror.IsKind(err, apierror.KindInvalid))

	assert.Equal(t, []string{"nope"}, rowSchema.Unknown(query.Criteria{"nope": query.Eq("x"), "status": query.Eq("a")}))
}

func TestFilterMultiValuedMembership(t *testing.T) {
	type tagged struct {
		ID   string
		Tags []string
	}
	schema := query.Schema[tagged]{
		Fields: []query.Field[tagged]{
			query.Membership("tag", query.Attr[tagged]{Key: "tags", Values: func(r tagged) []string { return r.Tags }}),
		},
	}
	rows := []tagged{
		{ID: "1", Tags: []string{"a", "b"}},
		{ID: "2", Tags: []string{"c"}},
		{ID: "3"},
	}

	got := query.Filter(rows, schema, query.Criteria{"tag": query.In("b", "c")})
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}
