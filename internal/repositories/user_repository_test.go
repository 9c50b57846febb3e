package repositories_test

import (
	"testing"

	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	first := &models.User{
		Name:        "First",
		Email:       "taken@test.com",
		Password:    "hash",
		PhoneNumber: "+77001112233",
	}
	require.NoError(t, repo.Create(db, first))

	// The unique index reports the clash even though no pre-check ran.
	err := repo.Create(db, &models.User{
		Name:        "Second",
		Email:       "taken@test.com",
		Password:    "hash",
		PhoneNumber: "+77003334455",
	})
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "taken@test.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserCreateDistinctEmails(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewUserRepository()

	require.NoError(t, repo.Create(db, &models.User{Name: "A", Email: "a@test.com", Password: "hash"}))
	require.NoError(t, repo.Create(db, &models.User{Name: "B", Email: "b@test.com", Password: "hash"}))

	found, err := repo.FindByEmail(db, "b@test.com")
	require.NoError(t, err)
	assert.Equal(t, "B", found.Name)
}
