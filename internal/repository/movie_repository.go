package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/movie-cafe-services/internal/model"
)

// ErrMovieNotFound is returned when a movie cannot be found in the DB.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepo encapsulates all database queries on the movies table.  It
// depends on a sql.DB connection which should be configured elsewhere.
type MovieRepo struct {
	db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the provided DB handle.  This
// allows dependency injection of the database in tests and at startup.
func NewMovieRepo(db *sql.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// Create inserts a new movie.  On success the movie's ID field is populated
// with the auto-generated value.  Inserting a title that already exists
// returns ErrDuplicate and leaves the table unchanged.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
	const q = `INSERT INTO movies (title, year, description, rating, ranking, review, img_url)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		m.Title, m.Year, m.Description, m.Rating, m.Ranking, m.Review, m.ImgURL)
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
	m.ID = id
	return nil
}

// GetByID fetches a movie by its ID.  It returns ErrMovieNotFound if no row
// is found.
func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*model.Movie, error) {
	const q = `SELECT id, title, year, description, rating, ranking, review, img_url
	           FROM movies WHERE id = ?`
	var m model.Movie
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&m.ID, &m.Title, &m.Year, &m.Description, &m.Rating, &m.Ranking, &m.Review, &m.ImgURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListByRanking returns all movies ordered by ranking ascending.  Ranking is
// stored as text, so it is cast to an integer for the sort; an empty ranking
// casts to zero and sorts first.  An empty table yields an empty slice, not
// an error.
func (r *MovieRepo) ListByRanking(ctx context.Context) ([]*model.Movie, error) {
	const q = `SELECT id, title, year, description, rating, ranking, review, img_url
	           FROM movies ORDER BY CAST(ranking AS INTEGER), id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Movie
	for rows.Next() {
		m := new(model.Movie)
		if err := rows.Scan(&m.ID, &m.Title, &m.Year, &m.Description,
			&m.Rating, &m.Ranking, &m.Review, &m.ImgURL); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateReview applies the site's partial-update convention to the three
// editable fields: a field is written only when its new value is a non-empty
// string, an empty string leaves the stored value untouched.  When every
// field is empty the row is not written, but the id is still checked so that
// an unknown movie returns ErrMovieNotFound.
func (r *MovieRepo) UpdateReview(ctx context.Context, id int64, rating, ranking, review string) error {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if rating != "" {
		sets = append(sets, "rating = ?")
		args = append(args, rating)
	}
	if ranking != "" {
		sets = append(sets, "ranking = ?")
		args = append(args, ranking)
	}
	if review != "" {
		sets = append(sets, "review = ?")
		args = append(args, review)
	}
	if len(sets) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	q := "UPDATE movies SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}

// Delete removes a movie by id.  It returns ErrMovieNotFound when the row
// does not exist.
func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrMovieNotFound
	}
	return nil
}
