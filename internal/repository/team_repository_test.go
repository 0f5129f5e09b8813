package repository

import (
	"context"
	"testing"

	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTeamRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewTeamRepository(tdb.Database)
	ctx := context.Background()

	t.Run("Create and FindByID", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := &models.Team{Name: "Team 1"}
		require.NoError(t, repo.Create(ctx, team))
		assert.False(t, team.ID.IsZero())

		found, err := repo.FindByID(ctx, team.ID)
		require.NoError(t, err)
		assert.Equal(t, "Team 1", found.Name)
	})

	t.Run("FindByID not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, apperrors.ErrTeamNotFound)
	})

	t.Run("FindAll paginates sorted by name", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		for _, name := range []string{"Bravo", "Alpha", "Charlie"} {
			require.NoError(t, repo.Create(ctx, &models.Team{Name: name}))
		}

		teams, total, err := repo.FindAll(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, teams, 2)
		assert.Equal(t, "Alpha", teams[0].Name)
		assert.Equal(t, "Bravo", teams[1].Name)
	})

	t.Run("Update renames", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := &models.Team{Name: "Old Name"}
		require.NoError(t, repo.Create(ctx, team))

		newName := "New Name"
		updated, err := repo.Update(ctx, team.ID, &models.UpdateTeamRequest{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
	})

	t.Run("Delete", func(t *testing.T) {
		tdb.ClearCollection(t, "teams")

		team := &models.Team{Name: "Doomed"}
		require.NoError(t, repo.Create(ctx, team))

		require.NoError(t, repo.Delete(ctx, team.ID))
		assert.ErrorIs(t, repo.Delete(ctx, team.ID), apperrors.ErrTeamNotFound)
	})
}
