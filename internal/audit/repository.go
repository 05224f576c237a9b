package audit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context, filter Filter) ([]*Entry, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, e *Entry) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.audits").
		Columns("admin_id", "action", "table_name", "record_id", "old_values", "new_values").
		Values(e.AdminID, e.Action, e.TableName, e.RecordID, e.OldValues, e.NewValues).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create audit query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&e.ID, &e.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Entry, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "admin_id", "action", "table_name", "record_id", "old_values", "new_values", "created_at").
		From("public.audits").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get audit query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var e Entry
	if err := row.Scan(&e.ID, &e.AdminID, &e.Action, &e.TableName, &e.RecordID, &e.OldValues, &e.NewValues, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get audit failed: %w", err)
	}
	return &e, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Entry, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "admin_id", "action", "table_name", "record_id", "old_values", "new_values", "created_at", "count(*) OVER() as total_count").
		From("public.audits")

	if filter.Action != "" {
		query = query.Where(squirrel.Eq{"action": filter.Action})
	}
	if filter.TableName != "" {
		query = query.Where(squirrel.Eq{"table_name": filter.TableName})
	}
	if filter.AdminID != "" {
		query = query.Where(squirrel.Eq{"admin_id": filter.AdminID})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"created_at": filter.To})
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy("created_at " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list audits query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audits failed: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	var total int

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.AdminID, &e.Action, &e.TableName, &e.RecordID, &e.OldValues, &e.NewValues, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan audit failed: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, total, nil
}
