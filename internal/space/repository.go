package space

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *Space) error
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, s *Space) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// Images and services are stored pipe-joined in TEXT columns, matching
// the legacy data already in production.
func joinList(items []string) string {
	return strings.Join(items, "|")
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "|")
}

func (r *pgxRepository) Create(ctx context.Context, s *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.spaces").
		Columns("subtitle", "description", "address", "places", "price", "schedule", "images", "services").
		Values(s.Subtitle, s.Description, s.Address, s.Places, s.Price, s.Schedule, joinList(s.Images), joinList(s.Services)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create space query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Space, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "subtitle", "description", "address", "places", "price", "schedule", "images", "services", "created_at", "updated_at").
		From("public.spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get space query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	s, err := scanSpace(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get space failed: %w", err)
	}
	return s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "subtitle", "description", "address", "places", "price", "schedule", "images", "services", "created_at", "updated_at", "count(*) OVER() as total_count").
		From("public.spaces")

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"subtitle": pattern},
			squirrel.ILike{"description": pattern},
			squirrel.ILike{"address": pattern},
		})
	}
	if filter.MinPlaces > 0 {
		query = query.Where(squirrel.GtOrEq{"places": filter.MinPlaces})
	}
	if filter.MaxPrice > 0 {
		query = query.Where(squirrel.LtOrEq{"price": filter.MaxPrice})
	}

	sortBy := "created_at"
	switch filter.SortBy {
	case "price", "places", "subtitle":
		sortBy = filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(sortBy + " " + orderDir)

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
		return nil, 0, fmt.Errorf("build list spaces query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list spaces failed: %w", err)
	}
	defer rows.Close()

	var spaces []*Space
	var total int

	for rows.Next() {
		var s Space
		var images, services string
		if err := rows.Scan(&s.ID, &s.Subtitle, &s.Description, &s.Address, &s.Places, &s.Price, &s.Schedule, &images, &services, &s.CreatedAt, &s.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan space failed: %w", err)
		}
		s.Images = splitList(images)
		s.Services = splitList(services)
		spaces = append(spaces, &s)
	}

	return spaces, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Space) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.spaces").
		Set("subtitle", s.Subtitle).
		Set("description", s.Description).
		Set("address", s.Address).
		Set("places", s.Places).
		Set("price", s.Price).
		Set("schedule", s.Schedule).
		Set("images", joinList(s.Images)).
		Set("services", joinList(s.Services)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update space query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update space failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete space query failed: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete space failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanSpace(row pgx.Row) (*Space, error) {
	var s Space
	var images, services string
	if err := row.Scan(&s.ID, &s.Subtitle, &s.Description, &s.Address, &s.Places, &s.Price, &s.Schedule, &images, &services, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Images = splitList(images)
	s.Services = splitList(services)
	return &s, nil
}
