package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/hotel-admin/backend/internal/domain"
	"github.com/pkordes/hotel-admin/backend/internal/repo"
	"github.com/pkordes/hotel-admin/backend/testutil"
)

// runDocumentRepoTests runs the common contract suite against any DocumentRepo.
// newRepo must return an empty store on every call.
func runDocumentRepoTests(t *testing.T, newRepo func(t *testing.T) repo.DocumentRepo) {
	t.Helper()
	ctx := context.Background()

	t.Run("List empty collection", func(t *testing.T) {
		r := newRepo(t)

		got, err := r.List(ctx, "reservations")

		require.NoError(t, err)
		assert.NotNil(t, got, "List must return a non-nil slice")
		assert.Empty(t, got)
	})

	t.Run("Create then List", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, "reservations", domain.Fields{"name": "Alice"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID, "ID should be store-assigned")
		assert.Equal(t, domain.Fields{"name": "Alice"}, created.Fields)

		got, err := r.List(ctx, "reservations")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, created.ID, got[0].ID)
		assert.Equal(t, domain.Fields{"name": "Alice"}, got[0].Fields)
	})

	t.Run("Create assigns unique ids", func(t *testing.T) {
		r := newRepo(t)

		seen := map[string]bool{}
		for range 5 {
			rec, err := r.Create(ctx, "bookings", domain.Fields{"room": "101"})
			require.NoError(t, err)
			assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
			seen[rec.ID] = true
		}
		got, err := r.List(ctx, "bookings")
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("Create ignores a caller-supplied id", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, "users", domain.Fields{"id": "forged", "name": "Eve"})
		require.NoError(t, err)
		assert.NotEqual(t, "forged", created.ID)
		assert.NotContains(t, created.Fields, "id")
	})

	t.Run("Create keeps list and boolean values", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.Create(ctx, "accommodations", domain.Fields{
			"heading":         "Sea View Suite",
			"discountedPrice": 120.5,
			"amenities":       []any{"wifi", "minibar"},
			"nonSmoking":      true,
		})
		require.NoError(t, err)

		got, err := r.List(ctx, "accommodations")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 120.5, got[0].Fields["discountedPrice"])
		assert.Equal(t, []any{"wifi", "minibar"}, got[0].Fields["amenities"])
		assert.Equal(t, true, got[0].Fields["nonSmoking"])
	})

	t.Run("Collections are isolated", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.Create(ctx, "users", domain.Fields{"name": "Bob"})
		require.NoError(t, err)

		got, err := r.List(ctx, "bookings")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Update merges fields", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, "reservations", domain.Fields{"name": "Alice", "room": "12"})
		require.NoError(t, err)

		err = r.Update(ctx, "reservations", created.ID, domain.Fields{"name": "Bob"})
		require.NoError(t, err)

		got, err := r.List(ctx, "reservations")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, created.ID, got[0].ID)
		assert.Equal(t, domain.Fields{"name": "Bob", "room": "12"}, got[0].Fields)
	})

	t.Run("Update replaces a list value wholesale", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, "accommodations", domain.Fields{"amenities": []any{"wifi", "tv"}})
		require.NoError(t, err)

		require.NoError(t, r.Update(ctx, "accommodations", created.ID, domain.Fields{"amenities": []any{"spa"}}))

		got, err := r.List(ctx, "accommodations")
		require.NoError(t, err)
		assert.Equal(t, []any{"spa"}, got[0].Fields["amenities"])
	})

	t.Run("Update cannot change the id", func(t *testing.T) {
		r := newRepo(t)

		created, err := r.Create(ctx, "reservations", domain.Fields{"name": "Alice"})
		require.NoError(t, err)

		require.NoError(t, r.Update(ctx, "reservations", created.ID, domain.Fields{"id": "other"}))

		got, err := r.List(ctx, "reservations")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got[0].ID)
		assert.NotContains(t, got[0].Fields, "id")
	})

	t.Run("Update missing record", func(t *testing.T) {
		r := newRepo(t)

		err := r.Update(ctx, "reservations", "does-not-exist", domain.Fields{"name": "Bob"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete removes only the addressed record", func(t *testing.T) {
		r := newRepo(t)

		first, err := r.Create(ctx, "reservations", domain.Fields{"name": "r1"})
		require.NoError(t, err)
		second, err := r.Create(ctx, "reservations", domain.Fields{"name": "r2"})
		require.NoError(t, err)

		require.NoError(t, r.Delete(ctx, "reservations", first.ID))

		got, err := r.List(ctx, "reservations")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, second.ID, got[0].ID)
	})

	t.Run("Delete missing record", func(t *testing.T) {
		r := newRepo(t)

		err := r.Delete(ctx, "reservations", "does-not-exist")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("List preserves insertion order", func(t *testing.T) {
		r := newRepo(t)

		var want []string
		for _, name := range []string{"a", "b", "c"} {
			rec, err := r.Create(ctx, "users", domain.Fields{"name": name})
			require.NoError(t, err)
			want = append(want, rec.ID)
		}

		got, err := r.List(ctx, "users")
		require.NoError(t, err)
		ids := make([]string, len(got))
		for i, rec := range got {
			ids[i] = rec.ID
		}
		assert.Equal(t, want, ids)
	})
}

func TestMemoryDocumentRepo(t *testing.T) {
	runDocumentRepoTests(t, func(t *testing.T) repo.DocumentRepo {
		return repo.NewMemoryDocumentRepo()
	})
}

func TestSQLiteDocumentRepo(t *testing.T) {
	runDocumentRepoTests(t, func(t *testing.T) repo.DocumentRepo {
		return repo.NewSQLiteDocumentRepo(testutil.NewSQLite(t))
	})
}

// TestPostgresDocumentRepo runs the suite inside a transaction that is rolled
// back after each subtest, giving per-test isolation without cleanup SQL.
// Requires TEST_DATABASE_URL; skipped otherwise.
func TestPostgresDocumentRepo(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	runDocumentRepoTests(t, func(t *testing.T) repo.DocumentRepo {
		pool := testutil.NewPool(t)

		tx, err := pool.Begin(context.Background())
		require.NoError(t, err, "begin transaction")
		t.Cleanup(func() { _ = tx.Rollback(context.Background()) })

		return repo.NewDocumentRepo(tx)
	})
}

func TestMemoryDocumentRepo_ReturnsCopies(t *testing.T) {
	r := repo.NewMemoryDocumentRepo()
	ctx := context.Background()

	created, err := r.Create(ctx, "users", domain.Fields{"name": "Alice"})
	require.NoError(t, err)
	created.Fields["name"] = "mutated"

	got, err := r.List(ctx, "users")
	require.NoError(t, err)
	got[0].Fields["name"] = "mutated again"

	again, err := r.List(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again[0].Fields["name"])
}
