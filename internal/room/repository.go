package room

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing room data from storage.
type Repository interface {
	Create(ctx context.Context, rm *Room) error
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, rm *Room) error
	CountByHotel(ctx context.Context, hotelID string) (int, error)

	// FindAvailable returns every room in the hotel whose administrative
	// status is 'available' and which has no confirmed or checked-in booking
	// overlapping the half-open [checkIn, checkOut) interval. Ordered by
	// room number for deterministic results.
	FindAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]*Room, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.rooms").
		Columns("hotel_id", "room_type_id", "room_number", "floor", "status", "notes").
		Values(rm.HotelID, rm.RoomTypeID, rm.RoomNumber, rm.Floor, rm.Status, rm.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("create room failed: %w", err)
	}
	return nil
}

func scanRoom(row pgx.Row, extra ...any) (*Room, error) {
	var rm Room
	dest := []any{
		&rm.ID, &rm.HotelID, &rm.RoomTypeID, &rm.RoomTypeName,
		&rm.RoomNumber, &rm.Floor, &rm.Status, &rm.Notes,
		&rm.CreatedAt, &rm.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan room failed: %w", err)
	}
	return &rm, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Room, error) {
	const query = `
		SELECT r.id, r.hotel_id, r.room_type_id, rt.name,
		       r.room_number, r.floor, r.status, r.notes,
		       r.created_at, r.updated_at
		FROM public.rooms r
		JOIN public.room_types rt ON r.room_type_id = rt.id
		WHERE r.id = $1
	`

	return scanRoom(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.hotel_id", "r.room_type_id", "rt.name",
		"r.room_number", "r.floor", "r.status", "r.notes",
		"r.created_at", "r.updated_at",
		"count(*) OVER() AS total_count",
	).
		From("public.rooms r").
		Join("public.room_types rt ON r.room_type_id = rt.id")

	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"r.hotel_id": filter.HotelID})
	}
	if filter.RoomTypeID != "" {
		query = query.Where(squirrel.Eq{"r.room_type_id": filter.RoomTypeID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("r.room_number ASC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		rm, err := scanRoom(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, rm)
	}

	return rooms, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("room_type_id", rm.RoomTypeID).
		Set("room_number", rm.RoomNumber).
		Set("floor", rm.Floor).
		Set("status", rm.Status).
		Set("notes", rm.Notes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrNumberTaken
		}
		return fmt.Errorf("update room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CountByHotel(ctx context.Context, hotelID string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT count(*) FROM public.rooms WHERE hotel_id = $1", hotelID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rooms failed: %w", err)
	}
	return count, nil
}

func (r *pgxRepository) FindAvailable(ctx context.Context, hotelID string, checkIn, checkOut time.Time) ([]*Room, error) {
	// Half-open overlap: existing.check_in < requested.checkOut AND
	// existing.check_out > requested.checkIn. Back-to-back stays touch but
	// do not overlap. Only confirmed and checked-in bookings block.
	const query = `
		SELECT r.id, r.hotel_id, r.room_type_id, rt.name,
		       r.room_number, r.floor, r.status, r.notes,
		       r.created_at, r.updated_at
		FROM public.rooms r
		JOIN public.room_types rt ON r.room_type_id = rt.id
		WHERE r.hotel_id = $1
		  AND r.status = 'available'
		  AND NOT EXISTS (
		        SELECT 1 FROM public.bookings b
		        WHERE b.room_id = r.id
		          AND b.status IN ('confirmed', 'checked_in')
		          AND b.check_in_date < $3
		          AND b.check_out_date > $2
		  )
		ORDER BY r.room_number ASC
	`

	rows, err := r.pool.Query(ctx, query, hotelID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("find available rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}

	return rooms, nil
}
