package postgres

import (
	"testing"

	"github.com/goto/backoffice/core/admin"
	"github.com/goto/backoffice/core/policy"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/reservation"
	"github.com/goto/salt/log"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentWhere(t *testing.T) {
	t.Run("should translate reservation criteria in schema order", func(t *testing.T) {
		repo := newRepository(&Client{}, reservation.Schema, log.NewNoop())
		cr := reservation.Filter{
			Statuses:    []string{"결제완료", "예약확정"},
			StartDate:   "2024-11-01T10:00:00Z",
			SearchType:  "예약자명",
			SearchQuery: "홍",
		}.Criteria()

		sql, args, err := repo.where(cr).ToSql()
		require.NoError(t, err)
		assert.Equal(t,
			"(resource = ? AND data->>'status' IN (?,?) AND "+
				`(CASE WHEN data->>'reservationDate' ~ '^\d{4}-\d{2}-\d{2}' THEN to_char((data->>'reservationDate')::timestamptz AT TIME ZONE 'UTC', 'YYYY-MM-DD') END) >= ?`+
				" AND (data->>'customerName' ILIKE ?))",
			sql)
		assert.Equal(t, []interface{}{"reservation", "결제완료", "예약확정", "2024-11-01", "%홍%"}, args)
	})

	t.Run("should search every source when no scope is given", func(t *testing.T) {
		repo := newRepository(&Client{}, policy.Schema, log.NewNoop())
		sql, args, err := repo.where(policy.Filter{SearchTerm: "50%"}.Criteria()).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(resource = ? AND (data->>'title' ILIKE ?))", sql)
		assert.Equal(t, []interface{}{"policy", `%50\%%`}, args)
	})

	t.Run("should use jsonb array overlap for multi-valued attributes", func(t *testing.T) {
		repo := newRepository(&Client{}, admin.Schema, log.NewNoop())
		cr := query.Criteria{}.Set("permission", query.In("정산관리", "회원관리"))

		sql, args, err := repo.where(cr).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(resource = ? AND (data->'permissions') ??| ?)", sql)
		assert.Equal(t, []interface{}{"admin", pq.Array([]string{"정산관리", "회원관리"})}, args)
	})

	t.Run("should only scope by resource when criteria are empty", func(t *testing.T) {
		repo := newRepository(&Client{}, reservation.Schema, log.NewNoop())
		sql, args, err := repo.where(query.Criteria{}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "(resource = ?)", sql)
		assert.Equal(t, []interface{}{"reservation"}, args)
	})
}

func TestDocumentOrderBy(t *testing.T) {
	assert.Equal(t, []string{"data->'priority' DESC", "position ASC"},
		newRepository(&Client{}, policy.Schema, log.NewNoop()).orderBy())
	assert.Equal(t, []string{"position ASC"},
		newRepository(&Client{}, reservation.Schema, log.NewNoop()).orderBy())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%\_off\\`, escapeLike(`100%_off\`))
	assert.Equal(t, "김", escapeLike("김"))
}

func TestConfigConnectionURL(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, Name: "backoffice", User: "u", Password: "p", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:5433/backoffice?sslmode=require&timezone=UTC", cfg.ConnectionURL().String())

	cfg.SSLMode = ""
	assert.Equal(t, "disable", cfg.ConnectionURL().Query().Get("sslmode"))
}

func TestUTCDay(t *testing.T) {
	assert.Equal(t,
		`(CASE WHEN data->>'joinDate' ~ '^\d{4}-\d{2}-\d{2}' THEN to_char((data->>'joinDate')::timestamptz AT TIME ZONE 'UTC', 'YYYY-MM-DD') END)`,
		utcDay("joinDate"))
}
