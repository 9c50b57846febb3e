package services_test

import (
	"context"
	"testing"

	"niddle_backend/internal/models"
	"niddle_backend/internal/repositories"
	"niddle_backend/internal/services"
	"niddle_backend/internal/services/dto"
	"niddle_backend/pkg/apperrors"
	"niddle_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCardService() services.CardService {
	return services.NewCardService(repositories.NewCardRepository())
}

func addCard(t *testing.T, svc services.CardService, db *gorm.DB, userID uint, main bool) *models.Card {
	t.Helper()
	card, err := svc.Add(context.Background(), db, userID, &dto.AddCardRequest{
		Number:    "4400430112345678",
		ValidThru: "12/28",
		Name:      "TEST HOLDER",
		CVV:       "123",
		Main:      main,
	})
	require.NoError(t, err)
	return card
}

func mainCards(t *testing.T, db *gorm.DB, userID uint) []models.Card {
	t.Helper()
	var cards []models.Card
	require.NoError(t, db.Where("user_id = ? AND main = ?", userID, true).Find(&cards).Error)
	return cards
}

func TestAddCardDemotesPreviousMain(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newCardService()
	user := helpers.CreateUser(t, db, "Card User", "card@test.com", "password123")

	first := addCard(t, svc, db, user.ID, true)
	second := addCard(t, svc, db, user.ID, true)

	live := mainCards(t, db, user.ID)
	require.Len(t, live, 1)
	assert.Equal(t, second.ID, live[0].ID)
	assert.NotEqual(t, first.ID, live[0].ID)
}

func TestSetMainCard(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newCardService()
	user := helpers.CreateUser(t, db, "Card User", "card@test.com", "password123")

	first := addCard(t, svc, db, user.ID, true)
	second := addCard(t, svc, db, user.ID, false)

	require.NoError(t, svc.SetMain(context.Background(), db, user.ID, second.ID))

	live := mainCards(t, db, user.ID)
	require.Len(t, live, 1)
	assert.Equal(t, second.ID, live[0].ID)

	// Promoting the current main card is a no-op.
	require.NoError(t, svc.SetMain(context.Background(), db, user.ID, second.ID))
	assert.Len(t, mainCards(t, db, user.ID), 1)
	_ = first
}

func TestCardOwnership(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newCardService()
	owner := helpers.CreateUser(t, db, "Owner", "owner@test.com", "password123")
	other := helpers.CreateUser(t, db, "Other", "other@test.com", "password123")

	card := addCard(t, svc, db, owner.ID, false)

	_, err := svc.Get(context.Background(), db, other.ID, card.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotCardOwner)

	err = svc.Delete(context.Background(), db, other.ID, card.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotCardOwner)

	err = svc.SetMain(context.Background(), db, other.ID, card.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotCardOwner)
}

func TestCardNotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newCardService()
	user := helpers.CreateUser(t, db, "Card User", "card@test.com", "password123")

	_, err := svc.Get(context.Background(), db, user.ID, 4242)
	assert.ErrorIs(t, err, apperrors.ErrCardNotFound)
}

func TestDeleteCard(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newCardService()
	user := helpers.CreateUser(t, db, "Card User", "card@test.com", "password123")

	card := addCard(t, svc, db, user.ID, false)
	require.NoError(t, svc.Delete(context.Background(), db, user.ID, card.ID))

	cards, err := svc.List(context.Background(), db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
}
