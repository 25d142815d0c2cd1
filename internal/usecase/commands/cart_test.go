//go:build unit

package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/infra"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartCommands(repo *fakeCartRepo) commands.CartCommands {
	return commands.NewCartCommands(repo, &fakeUoW{})
}

func TestAddOrMergeLine(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()

	t.Run("valid line is upserted", func(t *testing.T) {
		repo := &fakeCartRepo{}
		c := newCartCommands(repo)

		require.NoError(t, c.AddOrMergeLine(t.Context(), customerID, productID, 2))
		require.Len(t, repo.UpsertedLines, 1)
		assert.Equal(t, productID, repo.UpsertedLines[0].ProductID)
		assert.Equal(t, int32(2), repo.UpsertedLines[0].Quantity)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		repo := &fakeCartRepo{}
		c := newCartCommands(repo)

		require.ErrorIs(t, c.AddOrMergeLine(t.Context(), customerID, productID, 0), commands.ErrInvalidQuantity)
		assert.Empty(t, repo.UpsertedLines)
	})

	t.Run("unknown product maps the FK violation", func(t *testing.T) {
		repo := &fakeCartRepo{
			UpsertErr: infra.WrapRepoErr("fk violated", errors.New("23503"), infra.KindForeignKeyViolated),
		}
		c := newCartCommands(repo)

		require.ErrorIs(t, c.AddOrMergeLine(t.Context(), customerID, productID, 1), commands.ErrProductNotFound)
	})
}

func TestSetLineQuantity(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()

	t.Run("existing line is overwritten", func(t *testing.T) {
		repo := &fakeCartRepo{SetAffected: 1}
		c := newCartCommands(repo)

		require.NoError(t, c.SetLineQuantity(t.Context(), customerID, productID, 7))
	})

	t.Run("absent line is not found", func(t *testing.T) {
		repo := &fakeCartRepo{SetAffected: 0}
		c := newCartCommands(repo)

		require.ErrorIs(t, c.SetLineQuantity(t.Context(), customerID, productID, 7), commands.ErrCartLineNotFound)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		repo := &fakeCartRepo{SetAffected: 1}
		c := newCartCommands(repo)

		require.ErrorIs(t, c.SetLineQuantity(t.Context(), customerID, productID, -1), commands.ErrInvalidQuantity)
	})
}

func TestRemoveLineAndClear(t *testing.T) {
	customerID := uuid.New()
	productID := uuid.New()

	t.Run("remove is idempotent", func(t *testing.T) {
		repo := &fakeCartRepo{}
		c := newCartCommands(repo)

		require.NoError(t, c.RemoveLine(t.Context(), customerID, productID))
		require.NoError(t, c.RemoveLine(t.Context(), customerID, productID))
		assert.Len(t, repo.DeletedLineFor, 2)
	})

	t.Run("clear empties the whole cart", func(t *testing.T) {
		repo := &fakeCartRepo{}
		c := newCartCommands(repo)

		require.NoError(t, c.ClearCart(t.Context(), customerID))
		assert.Equal(t, []uuid.UUID{customerID}, repo.ClearedFor)
	})
}
