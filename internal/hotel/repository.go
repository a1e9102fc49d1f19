package hotel

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing hotel data from storage.
type Repository interface {
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id string) (*Hotel, error)
	GetBySlug(ctx context.Context, slug string) (*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Update(ctx context.Context, h *Hotel) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var hotelColumns = []string{
	"h.id", "h.name", "h.slug", "h.description",
	"h.address", "h.city", "h.state", "h.country", "h.postal_code",
	"h.phone", "h.email", "h.website", "h.owner_id",
	"h.subscription_plan", "h.subscription_status",
	"h.billing_cycle_start", "h.billing_cycle_end",
	"h.is_active", "h.created_at", "h.updated_at",
}

func scanHotel(row pgx.Row, extra ...any) (*Hotel, error) {
	var h Hotel
	dest := []any{
		&h.ID, &h.Name, &h.Slug, &h.Description,
		&h.Address, &h.City, &h.State, &h.Country, &h.PostalCode,
		&h.Phone, &h.Email, &h.Website, &h.OwnerID,
		&h.SubscriptionPlan, &h.SubscriptionStatus,
		&h.BillingCycleStart, &h.BillingCycleEnd,
		&h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan hotel failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) Create(ctx context.Context, h *Hotel) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.hotels").
		Columns(
			"name", "slug", "description",
			"address", "city", "state", "country", "postal_code",
			"phone", "email", "website", "owner_id",
			"subscription_plan", "subscription_status",
			"billing_cycle_start", "billing_cycle_end", "is_active",
		).
		Values(
			h.Name, h.Slug, h.Description,
			h.Address, h.City, h.State, h.Country, h.PostalCode,
			h.Phone, h.Email, h.Website, h.OwnerID,
			h.SubscriptionPlan, h.SubscriptionStatus,
			h.BillingCycleStart, h.BillingCycleEnd, h.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create hotel query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrSlugTaken
		}
		return fmt.Errorf("create hotel failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Hotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(hotelColumns...).
		From("public.hotels h").
		Where(squirrel.Eq{"h.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotel query failed: %w", err)
	}

	return scanHotel(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetBySlug(ctx context.Context, slug string) (*Hotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(hotelColumns...).
		From("public.hotels h").
		Where(squirrel.Eq{"h.slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotel by slug query failed: %w", err)
	}

	return scanHotel(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, hotelColumns...), "count(*) OVER() AS total_count")
	query := psql.Select(cols...).From("public.hotels h")

	if filter.OnlyActive {
		query = query.Where(squirrel.Eq{"h.is_active": true})
	}
	if filter.City != "" {
		query = query.Where(squirrel.ILike{"h.city": filter.City})
	}
	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"h.name": pattern},
			squirrel.ILike{"h.city": pattern},
		})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("h.name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	var total int

	for rows.Next() {
		h, err := scanHotel(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		hotels = append(hotels, h)
	}

	return hotels, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, h *Hotel) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.hotels").
		Set("name", h.Name).
		Set("description", h.Description).
		Set("address", h.Address).
		Set("city", h.City).
		Set("state", h.State).
		Set("country", h.Country).
		Set("postal_code", h.PostalCode).
		Set("phone", h.Phone).
		Set("email", h.Email).
		Set("website", h.Website).
		Set("subscription_plan", h.SubscriptionPlan).
		Set("subscription_status", h.SubscriptionStatus).
		Set("billing_cycle_start", h.BillingCycleStart).
		Set("billing_cycle_end", h.BillingCycleEnd).
		Set("is_active", h.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update hotel query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update hotel failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM public.hotels WHERE slug = $1)", slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug failed: %w", err)
	}
	return exists, nil
}
