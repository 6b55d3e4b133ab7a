package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lonelydev/caloohpay/settings"
	"github.com/lonelydev/caloohpay/store/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_DefaultsBeforeFirstSave(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.Default().WeekdayRate, got.WeekdayRate)
	assert.Equal(t, settings.Default().WeekendRate, got.WeekendRate)
}

func TestSQLiteStore_SaveRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, settings.RateSettings{WeekdayRate: 55.5, WeekendRate: 80}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 55.5, got.WeekdayRate)
	assert.Equal(t, 80.0, got.WeekendRate)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSQLiteStore_SecondSaveReplacesFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, settings.RateSettings{WeekdayRate: 50, WeekendRate: 75}))
	require.NoError(t, store.Save(ctx, settings.RateSettings{WeekdayRate: 60, WeekendRate: 90}))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60.0, got.WeekdayRate)
}

func TestSQLiteStore_RejectsOutOfRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.Save(ctx, settings.RateSettings{WeekdayRate: 10, WeekendRate: 75})
	require.Error(t, err)
	assert.True(t, errors.Is(err, settings.ErrRateOutOfRange))

	// Nothing was persisted.
	got, _ := store.Get(ctx)
	assert.Equal(t, settings.Default().WeekdayRate, got.WeekdayRate)
}

func TestSQLiteStore_HistoryMostRecentFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, settings.RateSettings{WeekdayRate: 50, WeekendRate: 75}))
	require.NoError(t, store.Save(ctx, settings.RateSettings{WeekdayRate: 60, WeekendRate: 90}))

	history, err := store.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 60.0, history[0].WeekdayRate)
	assert.Equal(t, 50.0, history[1].WeekdayRate)
}
