package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/backoffice/core/query"
	"github.com/goto/backoffice/core/resource"
	"github.com/goto/backoffice/pkg/apierror"
	"github.com/goto/salt/log"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const seedBatchSize = 500

// DocumentRepository stores records of one resource as JSONB documents. Filters
// are translated from the resource's schema so results agree with the
// in-memory engine.
type DocumentRepository[T resource.Keyed] struct {
	client *Client
	schema query.Schema[T]
	logger log.Logger
}

func NewDocumentRepository[T resource.Keyed](c *Client, schema query.Schema[T], logger log.Logger) (*DocumentRepository[T], error) {
	if c == nil {
		return nil, errNilDBClient
	}
	return &DocumentRepository[T]{
		client: c,
		schema: schema,
		logger: logger,
	}, nil
}

func (r *DocumentRepository[T]) List(ctx context.Context, p query.Params) (query.Page[T], error) {
	if _, err := query.NewPagination(0, p.Page, p.Limit); err != nil {
		return query.Page[T]{}, err
	}

	where := r.where(p.Criteria)

	countSQL, countArgs, err := sq.Select("count(*)").
		From(documentsTable).
		Where(where).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return query.Page[T]{}, fmt.Errorf("build count %s query: %w", r.schema.Resource, err)
	}

	var total int
	if err := r.client.GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return query.Page[T]{}, fmt.Errorf("count %s: %w", r.schema.Resource, err)
	}

	pg, err := query.NewPagination(total, p.Page, p.Limit)
	if err != nil {
		return query.Page[T]{}, err
	}

	listSQL, listArgs, err := sq.Select("data::text").
		From(documentsTable).
		Where(where).
		OrderBy(r.orderBy()...).
		Limit(uint64(pg.Limit)).
		Offset(uint64(pg.Offset())).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return query.Page[T]{}, fmt.Errorf("build list %s query: %w", r.schema.Resource, err)
	}

	var docs []string
	if err := r.client.SelectContext(ctx, &docs, listSQL, listArgs...); err != nil {
		return query.Page[T]{}, fmt.Errorf("list %s: %w", r.schema.Resource, err)
	}

	data := make([]T, 0, len(docs))
	for _, doc := range docs {
		rec, err := decode[T](doc)
		if err != nil {
			return query.Page[T]{}, fmt.Errorf("list %s: %w", r.schema.Resource, err)
		}
		data = append(data, rec)
	}

	return query.Page[T]{Data: data, Pagination: pg}, nil
}

func (r *DocumentRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	getSQL, args, err := r.selectByID(id).ToSql()
	if err != nil {
		return zero, fmt.Errorf("build get %s query: %w", r.schema.Resource, err)
	}

	var doc string
	if err := r.client.GetContext(ctx, &doc, getSQL, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, apierror.NotFound(r.schema.Resource, id)
		}
		return zero, fmt.Errorf("get %s %q: %w", r.schema.Resource, id, err)
	}
	return decode[T](doc)
}

func (r *DocumentRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	id := rec.Key()
	if id == "" {
		return zero, apierror.Invalid(fmt.Sprintf("%s id is required", r.schema.Resource), nil)
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return zero, apierror.Invalid(fmt.Sprintf("encode %s: %s", r.schema.Resource, err), nil)
	}

	insertSQL, args, err := sq.Insert(documentsTable).
		Columns("resource", "id", "data").
		Values(r.schema.Resource, id, string(doc)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("build insert %s query: %w", r.schema.Resource, err)
	}

	if _, err := r.client.ExecContext(ctx, insertSQL, args...); err != nil {
		return zero, documentError("create", r.schema.Resource, id, err)
	}
	return rec, nil
}

func (r *DocumentRepository[T]) Update(ctx context.Context, id string, patch resource.Patch) (T, error) {
	var merged T
	err := r.client.RunWithinTx(ctx, func(tx *sqlx.Tx) error {
		getSQL, args, err := r.selectByID(id).Suffix("FOR UPDATE").ToSql()
		if err != nil {
			return fmt.Errorf("build get %s query: %w", r.schema.Resource, err)
		}

		var doc string
		if err := tx.GetContext(ctx, &doc, getSQL, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apierror.NotFound(r.schema.Resource, id)
			}
			return fmt.Errorf("get %s %q: %w", r.schema.Resource, id, err)
		}

		current, err := decode[T](doc)
		if err != nil {
			return err
		}
		if merged, err = resource.Apply(current, patch); err != nil {
			return apierror.Invalid(fmt.Sprintf("patch %s %q: %s", r.schema.Resource, id, err), nil)
		}

		out, err := json.Marshal(merged)
		if err != nil {
			return apierror.Invalid(fmt.Sprintf("encode %s: %s", r.schema.Resource, err), nil)
		}

		updateSQL, args, err := sq.Update(documentsTable).
			Set("data", string(out)).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"resource": r.schema.Resource, "id": id}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("build update %s query: %w", r.schema.Resource, err)
		}
		if _, err := tx.ExecContext(ctx, updateSQL, args...); err != nil {
			return documentError("update", r.schema.Resource, id, err)
		}

		if cl, err := resource.Changes(current, merged); err == nil {
			r.logger.Debug("document updated", "resource", r.schema.Resource, "id", id, "changed", resource.Paths(cl))
		}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return merged, nil
}

func (r *DocumentRepository[T]) Delete(ctx context.Context, id string) error {
	deleteSQL, args, err := sq.Delete(documentsTable).
		Where(sq.Eq{"resource": r.schema.Resource, "id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s query: %w", r.schema.Resource, err)
	}

	res, err := r.client.ExecContext(ctx, deleteSQL, args...)
	if err != nil {
		return fmt.Errorf("delete %s %q: %w", r.schema.Resource, id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s %q: %w", r.schema.Resource, id, err)
	}
	if affected == 0 {
		return apierror.NotFound(r.schema.Resource, id)
	}
	return nil
}

// Seed inserts records in order, skipping ids that already exist.
func (r *DocumentRepository[T]) Seed(ctx context.Context, records []T) error {
	return r.client.RunWithinTx(ctx, func(tx *sqlx.Tx) error {
		for start := 0; start < len(records); start += seedBatchSize {
			end := start + seedBatchSize
			if end > len(records) {
				end = len(records)
			}

			insert := sq.Insert(documentsTable).Columns("resource", "id", "data")
			for _, rec := range records[start:end] {
				doc, err := json.Marshal(rec)
				if err != nil {
					return fmt.Errorf("encode %s %q: %w", r.schema.Resource, rec.Key(), err)
				}
				insert = insert.Values(r.schema.Resource, rec.Key(), string(doc))
			}

			insertSQL, args, err := insert.
				Suffix("ON CONFLICT (resource, id) DO NOTHING").
				PlaceholderFormat(sq.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("build seed %s query: %w", r.schema.Resource, err)
			}
			if _, err := tx.ExecContext(ctx, insertSQL, args...); err != nil {
				return fmt.Errorf("seed %s: %w", r.schema.Resource, checkPostgresError(err))
			}
		}
		return nil
	})
}

func (r *DocumentRepository[T]) selectByID(id string) sq.SelectBuilder {
	return sq.Select("data::text").
		From(documentsTable).
		Where(sq.Eq{"resource": r.schema.Resource, "id": id}).
		PlaceholderFormat(sq.Dollar)
}

// where mirrors the in-memory matchers: criteria are ANDed, values within a
// criterion are ORed.
func (r *DocumentRepository[T]) where(cr query.Criteria) sq.And {
	conds := sq.And{sq.Eq{"resource": r.schema.Resource}}
	for _, f := range r.schema.Fields {
		c, ok := cr[f.Param]
		if !ok || c.IsZero() || len(f.Sources) == 0 {
			continue
		}
		src := f.Sources[0]

		switch f.Kind {
		case query.KindMembership:
			if src.Multi() {
				conds = append(conds, sq.Expr(fmt.Sprintf("(%s) ??| ?", jsonAttr(src.Key)), pq.Array(c.Values)))
				continue
			}
			conds = append(conds, sq.Eq{textAttr(src.Key): c.Values})

		case query.KindSearch:
			pattern := "%" + escapeLike(c.First()) + "%"
			var anyOf sq.Or
			for _, s := range f.Scoped(c.Scope) {
				anyOf = append(anyOf, sq.ILike{textAttr(s.Key): pattern})
			}
			conds = append(conds, anyOf)

		case query.KindFrom, query.KindUntil:
			bound, err := query.NormalizeDate(c.First())
			if err != nil {
				bound = c.First()
			}
			day := utcDay(src.Key)
			if f.Kind == query.KindFrom {
				conds = append(conds, sq.GtOrEq{day: bound})
			} else {
				conds = append(conds, sq.LtOrEq{day: bound})
			}

		default:
			conds = append(conds, sq.Eq{textAttr(src.Key): c.First()})
		}
	}
	return conds
}

func (r *DocumentRepository[T]) orderBy() []string {
	var order []string
	if r.schema.SortKey != "" {
		dir := "ASC"
		if r.schema.SortDesc {
			dir = "DESC"
		}
		order = append(order, fmt.Sprintf("%s %s", jsonAttr(r.schema.SortKey), dir))
	}
	return append(order, "position ASC")
}

func decode[T any](doc string) (T, error) {
	var rec T
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return rec, fmt.Errorf("decode document: %w", err)
	}
	return rec, nil
}

// Attribute keys come from schemas, never from requests.
func textAttr(key string) string {
	return fmt.Sprintf("data->>'%s'", key)
}

// utcDay reduces a date or timestamp attribute to its UTC calendar day.
// Values that do not start with a date yield NULL and never match.
func utcDay(key string) string {
	return fmt.Sprintf(`(CASE WHEN %[1]s ~ '^\d{4}-\d{2}-\d{2}' THEN to_char((%[1]s)::timestamptz AT TIME ZONE 'UTC', 'YYYY-MM-DD') END)`, textAttr(key))
}

func jsonAttr(key string) string {
	return fmt.Sprintf("data->'%s'", key)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
