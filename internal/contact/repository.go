package contact

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, msg *Message) error
	GetByID(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, filter Filter) ([]*Message, int, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

var messageColumns = []string{"id", "name", "email", "subject", "body", "created_at"}

func (r *repository) Create(ctx context.Context, msg *Message) error {
	query, args, err := r.sb.
		Insert("public.contacts").
		Columns("name", "email", "subject", "body").
		Values(msg.Name, msg.Email, msg.Subject, msg.Body).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert contact query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Message, error) {
	query, args, err := r.sb.
		Select(messageColumns...).
		From("public.contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select contact query: %w", err)
	}

	var msg Message
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Body, &msg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select contact: %w", err)
	}
	return &msg, nil
}

func (r *repository) List(ctx context.Context, filter Filter) ([]*Message, int, error) {
	columns := append([]string{}, messageColumns...)
	columns = append(columns, "count(*) OVER() AS total")

	order := "DESC"
	if filter.SortOrder == "ASC" {
		order = "ASC"
	}

	builder := r.sb.
		Select(columns...).
		From("public.contacts").
		OrderBy("created_at " + order)

	if filter.PageSize > 0 {
		builder = builder.
			Limit(uint64(filter.PageSize)).
			Offset(uint64((filter.Page - 1) * filter.PageSize))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list contacts query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var messages []*Message
	var total int
	for rows.Next() {
		var msg Message
		if err := rows.Scan(
			&msg.ID, &msg.Name, &msg.Email, &msg.Subject, &msg.Body, &msg.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		messages = append(messages, &msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate contacts: %w", err)
	}
	return messages, total, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sb.
		Delete("public.contacts").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete contact query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
