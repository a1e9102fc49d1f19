package roomtype

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing room type data from storage.
type Repository interface {
	Create(ctx context.Context, rt *RoomType) error
	GetByID(ctx context.Context, id string) (*RoomType, error)
	List(ctx context.Context, filter Filter) ([]*RoomType, int, error)
	Update(ctx context.Context, rt *RoomType) error
	Deactivate(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rt *RoomType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.room_types").
		Columns("hotel_id", "name", "description", "base_price", "max_occupancy", "amenities", "images", "is_active").
		Values(rt.HotelID, rt.Name, rt.Description, rt.BasePrice, rt.MaxOccupancy, rt.Amenities, rt.Images, rt.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room type query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rt.ID, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return fmt.Errorf("create room type failed: %w", err)
	}
	return nil
}

func scanRoomType(row pgx.Row, extra ...any) (*RoomType, error) {
	var rt RoomType
	dest := []any{
		&rt.ID, &rt.HotelID, &rt.Name, &rt.Description,
		&rt.BasePrice, &rt.MaxOccupancy, &rt.Amenities, &rt.Images,
		&rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan room type failed: %w", err)
	}
	return &rt, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*RoomType, error) {
	const query = `
		SELECT rt.id, rt.hotel_id, rt.name, rt.description,
		       rt.base_price, rt.max_occupancy, rt.amenities, rt.images,
		       rt.is_active, rt.created_at, rt.updated_at
		FROM public.room_types rt
		WHERE rt.id = $1
	`

	return scanRoomType(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*RoomType, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"rt.id", "rt.hotel_id", "rt.name", "rt.description",
		"rt.base_price", "rt.max_occupancy", "rt.amenities", "rt.images",
		"rt.is_active", "rt.created_at", "rt.updated_at",
		"count(*) OVER() AS total_count",
	).From("public.room_types rt")

	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"rt.hotel_id": filter.HotelID})
	}
	if filter.OnlyActive {
		query = query.Where(squirrel.Eq{"rt.is_active": true})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("rt.name ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list room types query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list room types failed: %w", err)
	}
	defer rows.Close()

	var types []*RoomType
	var total int

	for rows.Next() {
		rt, err := scanRoomType(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		types = append(types, rt)
	}

	return types, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rt *RoomType) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.room_types").
		Set("name", rt.Name).
		Set("description", rt.Description).
		Set("base_price", rt.BasePrice).
		Set("max_occupancy", rt.MaxOccupancy).
		Set("amenities", rt.Amenities).
		Set("images", rt.Images).
		Set("is_active", rt.IsActive).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rt.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room type query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update room type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Deactivate(ctx context.Context, id string) error {
	ct, err := r.pool.Exec(ctx,
		"UPDATE public.room_types SET is_active = false, updated_at = now() WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deactivate room type failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
