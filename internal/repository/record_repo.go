package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"reviewdeck/internal/lib"

	sq "github.com/Masterminds/squirrel"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

// Record names owned by the dashboard core.
const (
	RecordPinnedIDs     = "pinned_ids"
	RecordFilterOptions = "filter_options"
)

// RecordRepo stores named JSON records in the records table. It is the Go
// counterpart of a flat key-value browser store: one row per record name,
// the body an opaque JSON document.
type RecordRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
	psql   sq.StatementBuilderType
}

func NewRecordRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *RecordRepo {
	return &RecordRepo{
		db:     db,
		getter: c,
		psql:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Get returns the raw body of the named record, or ErrNotFound.
func (r *RecordRepo) Get(ctx context.Context, name string) ([]byte, error) {
	const op = "record_repo.Get"

	query, args, err := r.psql.
		Select("body").
		From("records").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, lib.Err(op, err)
	}

	var body []byte
	err = r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &body, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return body, nil
}

// Save upserts the named record. body must be valid JSON; the table column is
// jsonb and the database will reject anything else.
func (r *RecordRepo) Save(ctx context.Context, name string, body []byte) error {
	const op = "record_repo.Save"

	if !json.Valid(body) {
		return lib.Err(op, errors.New("record body is not valid JSON"))
	}

	query, args, err := r.psql.
		Insert("records").
		Columns("name", "body", "updated_at").
		Values(name, body, sq.Expr("now()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = now()").
		ToSql()
	if err != nil {
		return lib.Err(op, err)
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
