package numerator

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"invoicer/internal/infrastructure/storage/postgres/testhelper"
)

func TestPostgresStore_ConcurrentAllocation(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	store := NewPostgres(pool)
	ctx := context.Background()

	owner := testhelper.CreateUser(t, pool)
	other := testhelper.CreateUser(t, pool)

	require.NoError(t, store.Ensure(ctx, owner))
	require.NoError(t, store.Ensure(ctx, owner))

	const k = 50
	got := make([]int64, k)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < k; i++ {
		g.Go(func() error {
			n, err := store.AllocateNext(gctx, owner)
			got[i] = n
			return err
		})
	}
	require.NoError(t, g.Wait())

	sort.Slice(got, func(a, b int) bool { return got[a] < got[b] })
	for i, n := range got {
		assert.Equal(t, int64(i+1), n)
	}

	next, err := store.Peek(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(k+1), next)

	// Another owner without Ensure starts at 1.
	first, err := store.AllocateNext(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)
}
