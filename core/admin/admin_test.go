package admin_test

import (
	"testing"

	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/query"
	"github.com/stretchr/testify/assert"
)

func TestFilterPermissions(t *testing.T) {
	admins := []admin.Admin{
		{ID: 128, Name: "김관리", Status: admin.StatusInUse, Permissions: []string{"회원관리", "정산관리"}},
		{ID: 112, Name: "이운영", Status: admin.StatusInUse, Permissions: []string{"게시판관리"}},
		{ID: 94, Name: "박정지", Status: admin.StatusSuspended, Permissions: []string{"정산관리", "통계관리"}},
	}

	cases := []struct {
		Description string
		Filter      admin.Filter
		Expected    []string
	}{
		{Description: "no filter", Filter: admin.Filter{}, Expected: []string{"128", "112", "94"}},
		{Description: "any granted permission", Filter: admin.Filter{Permissions: []string{"정산관리", "게시판관리"}}, Expected: []string{"128", "112", "94"}},
		{Description: "single permission", Filter: admin.Filter{Permissions: []string{"통계관리"}}, Expected: []string{"94"}},
		{Description: "permission and status", Filter: admin.Filter{Status: string(admin.StatusInUse), Permissions: []string{"정산관리"}}, Expected: []string{"128"}},
		{Description: "all status", Filter: admin.Filter{Status: query.AllValues, SearchTerm: "이운"}, Expected: []string{"112"}},
	}

	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			var got []string
			for _, a := range query.Filter(admins, admin.Schema, tc.Filter.Criteria()) {
				got = append(got, a.Key())
			}
			assert.Equal(t, tc.Expected, got)
		})
	}
}
