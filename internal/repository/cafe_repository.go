package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/movie-cafe-services/internal/model"
)

// ErrCafeNotFound is returned when a cafe cannot be found in the DB.
var ErrCafeNotFound = errors.New("cafe not found")

// ErrNoCafes is returned by PickRandom when the table holds no rows at all.
// It is distinct from ErrCafeNotFound because no particular id was asked for.
var ErrNoCafes = errors.New("no cafes")

const cafeColumns = `id, name, map_url, img_url, location, seats,
	has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price`

// CafeRepo encapsulates all database queries on the cafes table.
type CafeRepo struct {
	db *sql.DB
}

// NewCafeRepo constructs a CafeRepo with the provided DB handle.
func NewCafeRepo(db *sql.DB) *CafeRepo {
	return &CafeRepo{db: db}
}

// Create inserts a new cafe.  On success the cafe's ID field is populated
// with the auto-generated value.  Inserting a name that already exists
// returns ErrDuplicate and leaves the table unchanged.
func (r *CafeRepo) Create(ctx context.Context, cafe *model.Cafe) error {
	const q = `INSERT INTO cafes (name, map_url, img_url, location, seats,
	           has_toilet, has_wifi, has_sockets, can_take_calls, coffee_price)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		cafe.Name, cafe.MapURL, cafe.ImgURL, cafe.Location, cafe.Seats,
		cafe.HasToilet, cafe.HasWifi, cafe.HasSockets, cafe.CanTakeCalls, cafe.CoffeePrice)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	cafe.ID = id
	return nil
}

// GetByID fetches a cafe by its ID.  It returns ErrCafeNotFound if no row
// is found.
func (r *CafeRepo) GetByID(ctx context.Context, id int64) (*model.Cafe, error) {
	var c model.Cafe
	err := r.db.QueryRowContext(ctx,
		`SELECT `+cafeColumns+` FROM cafes WHERE id = ?`, id).Scan(
		&c.ID, &c.Name, &c.MapURL, &c.ImgURL, &c.Location, &c.Seats,
		&c.HasToilet, &c.HasWifi, &c.HasSockets, &c.CanTakeCalls, &c.CoffeePrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCafeNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ListByName returns all cafes ordered alphabetically by name.  An empty
// table yields an empty slice; callers decide whether that is an error.
func (r *CafeRepo) ListByName(ctx context.Context) ([]*model.Cafe, error) {
	return r.list(ctx, `SELECT `+cafeColumns+` FROM cafes ORDER BY name`)
}

// ListByLocation returns all cafes whose location equals loc, possibly none.
func (r *CafeRepo) ListByLocation(ctx context.Context, loc string) ([]*model.Cafe, error) {
	return r.list(ctx, `SELECT `+cafeColumns+` FROM cafes WHERE location = ? ORDER BY id`, loc)
}

// PickRandom selects one cafe uniformly at random.  The selection happens in
// sqlite so the whole table is never loaded.  It returns ErrNoCafes when the
// table is empty.
func (r *CafeRepo) PickRandom(ctx context.Context) (*model.Cafe, error) {
	var c model.Cafe
	err := r.db.QueryRowContext(ctx,
		`SELECT `+cafeColumns+` FROM cafes ORDER BY RANDOM() LIMIT 1`).Scan(
		&c.ID, &c.Name, &c.MapURL, &c.ImgURL, &c.Location, &c.Seats,
		&c.HasToilet, &c.HasWifi, &c.HasSockets, &c.CanTakeCalls, &c.CoffeePrice)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoCafes
		}
		return nil, err
	}
	return &c, nil
}

// UpdatePrice overwrites coffee_price for the given cafe.  No other field is
// ever mutated after creation.  It returns ErrCafeNotFound when the row does
// not exist.
func (r *CafeRepo) UpdatePrice(ctx context.Context, id int64, price string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cafes SET coffee_price = ? WHERE id = ?`, price, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCafeNotFound
	}
	return nil
}

// Delete removes a cafe by id.  It returns ErrCafeNotFound when the row does
// not exist.
func (r *CafeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cafes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCafeNotFound
	}
	return nil
}

func (r *CafeRepo) list(ctx context.Context, q string, args ...any) ([]*model.Cafe, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Cafe
	for rows.Next() {
		c := new(model.Cafe)
		if err := rows.Scan(&c.ID, &c.Name, &c.MapURL, &c.ImgURL, &c.Location, &c.Seats,
			&c.HasToilet, &c.HasWifi, &c.HasSockets, &c.CanTakeCalls, &c.CoffeePrice); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
