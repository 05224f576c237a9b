package reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type Repository interface {
	Create(ctx context.Context, r *Reservation) error
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	Exists(ctx context.Context, userID, spaceID, period string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, res *Reservation) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("user_id", "space_id", "reservation_period", "status").
		Values(res.UserID, res.SpaceID, res.Period.String(), res.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create reservation query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create reservation failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Exists(ctx context.Context, userID, spaceID, period string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("count(*)").
		From("public.reservations").
		Where(squirrel.Eq{
			"user_id":            userID,
			"space_id":           spaceID,
			"reservation_period": period,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build reservation exists query failed: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("check reservation exists failed: %w", err)
	}
	return count > 0, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("user_id", "space_id", "reservation_period", "status", "created_at", "updated_at", "count(*) OVER() as total_count").
		From("public.reservations")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
	}
	if filter.SpaceID != "" {
		query = query.Where(squirrel.Eq{"space_id": filter.SpaceID})
	}
	// Range filters compare against the date half of each period bound.
	if filter.StartDate != "" {
		query = query.Where(squirrel.Expr("split_part(reservation_period, '|', 1) >= ?", filter.StartDate))
	}
	if filter.EndDate != "" {
		query = query.Where(squirrel.Expr("split_part(reservation_period, '|', 2) <= ?", filter.EndDate+" 23:59"))
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	switch filter.SortBy {
	case "reservation_period":
		query = query.OrderBy("split_part(reservation_period, '|', 1) " + orderDir)
	case "updated_at":
		query = query.OrderBy("updated_at " + orderDir)
	default:
		query = query.OrderBy("created_at " + orderDir)
	}

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
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		var rawPeriod string
		if err := rows.Scan(&res.UserID, &res.SpaceID, &rawPeriod, &res.Active, &res.CreatedAt, &res.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}

		period, err := ParsePeriod(rawPeriod)
		if err != nil {
			// Legacy rows can be malformed; skip rather than fail the page.
			log.Warn().Str("period", rawPeriod).Msg("skipping reservation with unparsable period")
			continue
		}
		res.Period = period
		reservations = append(reservations, &res)
	}

	return reservations, total, nil
}
