package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing billing records.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context, filter Filter) ([]*Record, int, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
	Overview(ctx context.Context) (*Overview, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rec *Record) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.billing_records").
		Columns(
			"hotel_id", "amount", "plan_name",
			"billing_period_start", "billing_period_end",
			"status", "due_date",
		).
		Values(
			rec.HotelID, rec.Amount, rec.PlanName,
			rec.BillingPeriodStart, rec.BillingPeriodEnd,
			rec.Status, rec.DueDate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create billing record query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return fmt.Errorf("create billing record failed: %w", err)
	}
	return nil
}

const recordColumns = `
	b.id, b.hotel_id, h.name, b.amount, b.plan_name,
	b.billing_period_start, b.billing_period_end,
	b.status, b.due_date, b.paid_date, b.reminder_sent,
	b.created_at, b.updated_at
`

func scanRecord(row pgx.Row, extra ...any) (*Record, error) {
	var rec Record
	dest := []any{
		&rec.ID, &rec.HotelID, &rec.HotelName, &rec.Amount, &rec.PlanName,
		&rec.BillingPeriodStart, &rec.BillingPeriodEnd,
		&rec.Status, &rec.DueDate, &rec.PaidDate, &rec.ReminderSent,
		&rec.CreatedAt, &rec.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("scan billing record failed: %w", err)
	}
	return &rec, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Record, error) {
	query := `SELECT ` + recordColumns + `
		FROM public.billing_records b
		JOIN public.hotels h ON b.hotel_id = h.id
		WHERE b.id = $1`

	return scanRecord(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Record, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.hotel_id", "h.name", "b.amount", "b.plan_name",
		"b.billing_period_start", "b.billing_period_end",
		"b.status", "b.due_date", "b.paid_date", "b.reminder_sent",
		"b.created_at", "b.updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.billing_records b").
		Join("public.hotels h ON b.hotel_id = h.id")

	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"b.hotel_id": filter.HotelID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("b.due_date DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list billing records query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list billing records failed: %w", err)
	}
	defer rows.Close()

	var records []*Record
	var total int

	for rows.Next() {
		rec, err := scanRecord(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, total, nil
}

func (r *pgxRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	const query = `
		UPDATE public.billing_records
		SET status = $2, paid_date = $3, updated_at = now()
		WHERE id = $1
	`

	ct, err := r.pool.Exec(ctx, query, id, RecordPaid, paidAt)
	if err != nil {
		return fmt.Errorf("mark billing record paid failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *pgxRepository) Overview(ctx context.Context) (*Overview, error) {
	const query = `
		SELECT
			COALESCE(sum(amount), 0),
			COALESCE(sum(amount) FILTER (WHERE status = 'paid'), 0),
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'overdue')
		FROM public.billing_records
	`

	var o Overview
	if err := r.pool.QueryRow(ctx, query).Scan(
		&o.TotalBilled, &o.TotalCollected, &o.PendingRecords, &o.OverdueRecords,
	); err != nil {
		return nil, fmt.Errorf("billing overview failed: %w", err)
	}
	return &o, nil
}
