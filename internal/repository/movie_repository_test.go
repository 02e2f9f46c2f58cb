package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-cafe-services/internal/database"
	"github.com/iliyamo/movie-cafe-services/internal/model"
	"github.com/iliyamo/movie-cafe-services/internal/repository"
)

func newMovieRepo(t *testing.T) *repository.MovieRepo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "movies.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.EnsureMovieSchema(context.Background(), db))
	return repository.NewMovieRepo(db)
}

func TestMovieCreateAndGetRoundTrip(t *testing.T) {
	repo := newMovieRepo(t)
	ctx := context.Background()

	in := &model.Movie{
		Title:       "Phone Booth",
		Year:        2002,
		Description: "A publicist trapped in a phone booth.",
		Rating:      "7.3",
		Ranking:     "10",
		Review:      "My favourite character was the caller.",
		ImgURL:      "https://image.tmdb.org/t/p/w500/tjrX2oWRCM3Tvarz38zlZM7Uc10.jpg",
	}
	require.NoError(t, repo.Create(ctx, in))
	require.Greater(t, in.ID, int64(0))

	got, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestMovieCreateDuplicateTitle(t *testing.T) {
	repo := newMovieRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Movie{Title: "Avatar"}))
	err := repo.Create(ctx, &model.Movie{Title: "Avatar", Year: 2009})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	// The clashing record must not be persisted.
	movies, err := repo.ListByRanking(ctx)
	require.NoError(t, err)
	assert.Len(t, movies, 1)
}

func TestMovieListOrdersByRankingNumerically(t *testing.T) {
	repo := newMovieRepo(t)
	ctx := context.Background()

	for _, m := range []model.Movie{
		{Title: "Tenth", Ranking: "10"},
		{Title: "Second", Ranking: "2"},
		{Title: "First", Ranking: "1"},
	} {
		require.NoError(t, repo.Create(ctx, &m))
	}

	movies, err := repo.ListByRanking(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	// "10" would sort before "2" lexicographically; the order must be numeric.
	assert.Equal(t, "First", movies[0].Title)
	assert.Equal(t, "Second", movies[1].Title)
	assert.Equal(t, "Tenth", movies[2].Title)
}

func TestMovieListEmptyTable(t *testing.T) {
	repo := newMovieRepo(t)

	movies, err := repo.ListByRanking(context.Background())
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestMovieUpdateSkipsEmptyFields(t *testing.T) {
	repo := newMovieRepo(t)
	ctx := context.Background()

	m := &model.Movie{Title: "Up", Rating: "7", Ranking: "3", Review: "ok"}
	require.NoError(t, repo.Create(ctx, m))

	// Empty rating and review keep their stored values; ranking overwrites.
	require.NoError(t, repo.UpdateReview(ctx, m.ID, "", "1", ""))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "7", got.Rating)
	assert.Equal(t, "1", got.Ranking)
	assert.Equal(t, "ok", got.Review)
}

func TestMovieUpdateUnknownID(t *testing.T) {
	repo := newMovieRepo(t)
	ctx := context.Background()

	err := repo.UpdateReview(ctx, 42, "8", "", "")
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)

	// The id is checked even when every field is empty and nothing would be written.
	err = repo.UpdateReview(ctx, 42, "", "", "")
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
}

func TestMovieDelete(t *testing.T) {
	repo := newMovieRepo(t)
	ctx := context.Background()

	m := &model.Movie{Title: "Heat"}
	require.NoError(t, repo.Create(ctx, m))
	require.NoError(t, repo.Delete(ctx, m.ID))

	_, err := repo.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, repository.ErrMovieNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, m.ID), repository.ErrMovieNotFound)
}
