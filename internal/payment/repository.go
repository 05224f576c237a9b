package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListPending(ctx context.Context, filter Filter) ([]*Payment, int, error)
	ListCompleted(ctx context.Context, filter Filter) ([]*Payment, int, error)
	Update(ctx context.Context, p *Payment) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var paymentColumns = []string{
	"id", "user_id", "reservation_user_id", "reservation_space_id", "reservation_period",
	"amount", "status", "payment_method", "payment_date", "stripe_intent_id",
	"created_at", "updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, p *Payment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.payments").
		Columns("user_id", "reservation_user_id", "reservation_space_id", "reservation_period",
			"amount", "status", "payment_method", "payment_date", "stripe_intent_id").
		Values(p.UserID, p.ReservationUserID, p.ReservationSpaceID, p.ReservationPeriod,
			p.Amount, p.Status, p.PaymentMethod, p.PaymentDate, p.StripeIntentID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create payment query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(paymentColumns...).
		From("public.payments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get payment query failed: %w", err)
	}

	var p Payment
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.UserID, &p.ReservationUserID, &p.ReservationSpaceID, &p.ReservationPeriod,
		&p.Amount, &p.Status, &p.PaymentMethod, &p.PaymentDate, &p.StripeIntentID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get payment failed: %w", err)
	}
	return &p, nil
}

// ListPending returns payments that have not completed, newest first.
func (r *pgxRepository) ListPending(ctx context.Context, filter Filter) ([]*Payment, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(listColumns()...).
		From("public.payments").
		Where(squirrel.NotEq{"status": StatusCompleted}).
		OrderBy("created_at DESC")

	return r.list(ctx, query, filter)
}

// ListCompleted returns completed payments ordered by payment date.
func (r *pgxRepository) ListCompleted(ctx context.Context, filter Filter) ([]*Payment, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(listColumns()...).
		From("public.payments").
		Where(squirrel.Eq{"status": StatusCompleted}).
		OrderBy("payment_date DESC")

	return r.list(ctx, query, filter)
}

func listColumns() []string {
	return append(append([]string{}, paymentColumns...), "count(*) OVER() as total_count")
}

func (r *pgxRepository) list(ctx context.Context, query squirrel.SelectBuilder, filter Filter) ([]*Payment, int, error) {
	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"user_id": filter.UserID})
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
		return nil, 0, fmt.Errorf("build list payments query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list payments failed: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	var total int

	for rows.Next() {
		var p Payment
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.ReservationUserID, &p.ReservationSpaceID, &p.ReservationPeriod,
			&p.Amount, &p.Status, &p.PaymentMethod, &p.PaymentDate, &p.StripeIntentID,
			&p.CreatedAt, &p.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan payment failed: %w", err)
		}
		payments = append(payments, &p)
	}

	return payments, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, p *Payment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.payments").
		Set("amount", p.Amount).
		Set("status", p.Status).
		Set("payment_method", p.PaymentMethod).
		Set("payment_date", p.PaymentDate).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": p.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update payment query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update payment failed: %w", err)
	}
	return nil
}
