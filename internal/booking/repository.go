package booking

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

// errReferenceTaken signals a unique violation on booking_reference; the
// service retries with a fresh reference. Not exported: callers outside the
// package only ever see the final outcome.
var errReferenceTaken = errors.New("booking reference already taken")

type Repository interface {
	// Create inserts the booking. Returns ErrRoomUnavailable when the
	// room-interval exclusion constraint rejects the row, and
	// errReferenceTaken when only the reference collided.
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, b *Booking) error

	// HasOverlap checks whether any blocking booking on the room overlaps
	// the half-open [checkIn, checkOut) interval. excludeBookingID ignores
	// the booking itself during updates.
	HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error)

	// Calendar returns all bookings on the hotel intersecting [from, to).
	Calendar(ctx context.Context, hotelID string, from, to time.Time) ([]*Booking, error)

	ListGuests(ctx context.Context, hotelID string, page, pageSize int) ([]*Guest, int, error)
	CountForHotelSince(ctx context.Context, hotelID string, since time.Time) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.booking_reference, b.hotel_id, h.name, b.room_id, r.room_number, rt.name,
	b.guest_id, b.guest_name, b.guest_email, b.guest_phone,
	b.check_in_date, b.check_out_date, b.adults, b.children,
	b.total_amount, b.status, b.special_requests, b.created_at, b.updated_at`

var bookingSelectColumns = []string{
	"b.id", "b.booking_reference", "b.hotel_id", "h.name", "b.room_id", "r.room_number", "rt.name",
	"b.guest_id", "b.guest_name", "b.guest_email", "b.guest_phone",
	"b.check_in_date", "b.check_out_date", "b.adults", "b.children",
	"b.total_amount", "b.status", "b.special_requests", "b.created_at", "b.updated_at",
}

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	dest := []any{
		&b.ID, &b.Reference, &b.HotelID, &b.HotelName, &b.RoomID, &b.RoomNumber, &b.RoomTypeName,
		&b.GuestID, &b.GuestName, &b.GuestEmail, &b.GuestPhone,
		&b.CheckIn, &b.CheckOut, &b.Adults, &b.Children,
		&b.TotalAmount, &b.Status, &b.SpecialRequests, &b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"booking_reference", "hotel_id", "room_id",
			"guest_id", "guest_name", "guest_email", "guest_phone",
			"check_in_date", "check_out_date", "adults", "children",
			"total_amount", "status", "special_requests",
		).
		Values(
			b.Reference, b.HotelID, b.RoomID,
			b.GuestID, b.GuestName, b.GuestEmail, b.GuestPhone,
			b.CheckIn, b.CheckOut, b.Adults, b.Children,
			b.TotalAmount, b.Status, b.SpecialRequests,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.ExclusionViolation:
				// The room-interval constraint is the authoritative
				// answer under concurrency: the fast-fail overlap
				// check already passed, someone else got there first.
				return ErrRoomUnavailable
			case pgerrcode.UniqueViolation:
				return errReferenceTaken
			}
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query := `SELECT` + bookingColumns + `
		FROM public.bookings b
		JOIN public.hotels h ON b.hotel_id = h.id
		JOIN public.rooms r ON b.room_id = r.id
		JOIN public.room_types rt ON r.room_type_id = rt.id
		WHERE b.id = $1`

	return scanBooking(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	query := `SELECT` + bookingColumns + `
		FROM public.bookings b
		JOIN public.hotels h ON b.hotel_id = h.id
		JOIN public.rooms r ON b.room_id = r.id
		JOIN public.room_types rt ON r.room_type_id = rt.id
		WHERE b.booking_reference = $1`

	return scanBooking(r.pool.QueryRow(ctx, query, reference))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(bookingSelectColumns, "count(*) OVER() AS total_count")...).
		From("public.bookings b").
		Join("public.hotels h ON b.hotel_id = h.id").
		Join("public.rooms r ON b.room_id = r.id").
		Join("public.room_types rt ON r.room_type_id = rt.id")

	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"b.hotel_id": filter.HotelID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.GuestID != "" {
		query = query.Where(squirrel.Eq{"b.guest_id": filter.GuestID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	// Date range filtering (intersection logic)
	if filter.From != nil {
		query = query.Where(squirrel.Gt{"b.check_out_date": filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"b.check_in_date": filter.To})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("b.check_in_date DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", b.Status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
			// Confirming a pending booking can collide with a stay
			// confirmed in the meantime.
			return ErrRoomUnavailable
		}
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) HasOverlap(ctx context.Context, roomID string, checkIn, checkOut time.Time, excludeBookingID string) (bool, error) {
	// Half-open overlap: existing.check_in < new.checkOut AND
	// existing.check_out > new.checkIn. Only blocking statuses count.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": []string{string(StatusConfirmed), string(StatusCheckedIn)}}).
		Where(squirrel.Lt{"check_in_date": checkOut}).
		Where(squirrel.Gt{"check_out_date": checkIn})

	if excludeBookingID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build check overlap query failed: %w", err)
	}

	query := "SELECT EXISTS (" + sql + ")"

	var exists bool
	err = r.pool.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) Calendar(ctx context.Context, hotelID string, from, to time.Time) ([]*Booking, error) {
	query := `SELECT` + bookingColumns + `
		FROM public.bookings b
		JOIN public.hotels h ON b.hotel_id = h.id
		JOIN public.rooms r ON b.room_id = r.id
		JOIN public.room_types rt ON r.room_type_id = rt.id
		WHERE b.hotel_id = $1
		  AND b.check_in_date < $3
		  AND b.check_out_date > $2
		ORDER BY b.check_in_date ASC, r.room_number ASC`

	rows, err := r.pool.Query(ctx, query, hotelID, from, to)
	if err != nil {
		return nil, fmt.Errorf("calendar query failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *pgxRepository) ListGuests(ctx context.Context, hotelID string, page, pageSize int) ([]*Guest, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	const query = `
		SELECT guest_name, guest_email, max(guest_phone),
		       count(*), coalesce(sum(total_amount), 0), max(check_in_date),
		       count(*) OVER() AS total_count
		FROM public.bookings
		WHERE hotel_id = $1 AND status <> 'cancelled'
		GROUP BY guest_name, guest_email
		ORDER BY max(check_in_date) DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, hotelID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list guests failed: %w", err)
	}
	defer rows.Close()

	var guests []*Guest
	var total int

	for rows.Next() {
		var g Guest
		if err := rows.Scan(
			&g.Name, &g.Email, &g.Phone,
			&g.TotalBookings, &g.TotalSpent, &g.LastStay, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan guest failed: %w", err)
		}
		guests = append(guests, &g)
	}

	return guests, total, nil
}

func (r *pgxRepository) CountForHotelSince(ctx context.Context, hotelID string, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT count(*) FROM public.bookings WHERE hotel_id = $1 AND created_at >= $2",
		hotelID, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings failed: %w", err)
	}
	return count, nil
}
