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

func newCafeRepo(t *testing.T) *repository.CafeRepo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "cafes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.EnsureCafeSchema(context.Background(), db))
	return repository.NewCafeRepo(db)
}

func testCafe(name, location string) *model.Cafe {
	return &model.Cafe{
		Name:         name,
		MapURL:       "https://maps.example.com/" + name,
		ImgURL:       "https://img.example.com/" + name + ".jpg",
		Location:     location,
		Seats:        "20-30",
		HasToilet:    true,
		HasWifi:      true,
		HasSockets:   false,
		CanTakeCalls: false,
		CoffeePrice:  "£2.50",
	}
}

func TestCafeCreateAndGetRoundTrip(t *testing.T) {
	repo := newCafeRepo(t)
	ctx := context.Background()

	in := testCafe("Science Gallery", "Peckham")
	require.NoError(t, repo.Create(ctx, in))
	require.Greater(t, in.ID, int64(0))

	got, err := repo.GetByID(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestCafeCreateDuplicateName(t *testing.T) {
	repo := newCafeRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCafe("Twins", "Peckham")))
	err := repo.Create(ctx, testCafe("Twins", "Hackney"))
	require.ErrorIs(t, err, repository.ErrDuplicate)

	cafes, err := repo.ListByName(ctx)
	require.NoError(t, err)
	assert.Len(t, cafes, 1)
}

func TestCafeListByNameOrder(t *testing.T) {
	repo := newCafeRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Zetland", "Ace Hotel", "Mare Street Market"} {
		require.NoError(t, repo.Create(ctx, testCafe(name, "Hackney")))
	}

	cafes, err := repo.ListByName(ctx)
	require.NoError(t, err)
	require.Len(t, cafes, 3)
	assert.Equal(t, "Ace Hotel", cafes[0].Name)
	assert.Equal(t, "Mare Street Market", cafes[1].Name)
	assert.Equal(t, "Zetland", cafes[2].Name)
}

func TestCafeListByLocation(t *testing.T) {
	repo := newCafeRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCafe("One", "Peckham")))
	require.NoError(t, repo.Create(ctx, testCafe("Two", "Hackney")))
	require.NoError(t, repo.Create(ctx, testCafe("Three", "Peckham")))

	cafes, err := repo.ListByLocation(ctx, "Peckham")
	require.NoError(t, err)
	assert.Len(t, cafes, 2)

	none, err := repo.ListByLocation(ctx, "Soho")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCafePickRandom(t *testing.T) {
	repo := newCafeRepo(t)
	ctx := context.Background()

	_, err := repo.PickRandom(ctx)
	require.ErrorIs(t, err, repository.ErrNoCafes)

	names := map[string]bool{"One": true, "Two": true, "Three": true}
	for name := range names {
		require.NoError(t, repo.Create(ctx, testCafe(name, "Peckham")))
	}

	// Every pick must be a row that actually exists in the table.
	for i := 0; i < 10; i++ {
		cafe, err := repo.PickRandom(ctx)
		require.NoError(t, err)
		assert.True(t, names[cafe.Name], "picked unknown cafe %q", cafe.Name)
	}
}

func TestCafeUpdatePrice(t *testing.T) {
	repo := newCafeRepo(t)
	ctx := context.Background()

	cafe := testCafe("Four Boys", "Peckham")
	require.NoError(t, repo.Create(ctx, cafe))
	require.NoError(t, repo.UpdatePrice(ctx, cafe.ID, "£3.10"))

	got, err := repo.GetByID(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, "£3.10", got.CoffeePrice)
	// Nothing else changed.
	assert.Equal(t, cafe.Name, got.Name)
	assert.Equal(t, cafe.Seats, got.Seats)

	assert.ErrorIs(t, repo.UpdatePrice(ctx, 999, "£1"), repository.ErrCafeNotFound)
}

func TestCafeDelete(t *testing.T) {
	repo := newCafeRepo(t)
	ctx := context.Background()

	cafe := testCafe("Old Spike", "Peckham")
	require.NoError(t, repo.Create(ctx, cafe))
	require.NoError(t, repo.Delete(ctx, cafe.ID))

	_, err := repo.GetByID(ctx, cafe.ID)
	assert.ErrorIs(t, err, repository.ErrCafeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, cafe.ID), repository.ErrCafeNotFound)
}
