package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresTierSourceLookupTier(t *testing.T) {
	t.Run("returns active subscription plan", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT plan FROM subscriptions").
			WithArgs("user-1").
			WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow("premium"))

		source := NewPostgresTierSource(db)
		tier, err := source.LookupTier(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, TierPremium, tier)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("defaults to free without subscription", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT plan FROM subscriptions").
			WithArgs("user-2").
			WillReturnRows(sqlmock.NewRows([]string{"plan"}))

		source := NewPostgresTierSource(db)
		tier, err := source.LookupTier(context.Background(), "user-2")
		require.NoError(t, err)
		assert.Equal(t, TierFree, tier)
	})

	t.Run("fails on unknown plan", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT plan FROM subscriptions").
			WithArgs("user-3").
			WillReturnRows(sqlmock.NewRows([]string{"plan"}).AddRow("platinum"))

		source := NewPostgresTierSource(db)
		_, err = source.LookupTier(context.Background(), "user-3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown subscription plan")
	})

	t.Run("propagates query errors", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		queryErr := errors.New("connection refused")
		mock.ExpectQuery("SELECT plan FROM subscriptions").
			WithArgs("user-4").
			WillReturnError(queryErr)

		source := NewPostgresTierSource(db)
		_, err = source.LookupTier(context.Background(), "user-4")
		require.Error(t, err)
		assert.True(t, errors.Is(err, queryErr))
	})
}
