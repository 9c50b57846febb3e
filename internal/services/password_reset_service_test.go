package services_test

import (
	"context"
	"errors"
	"testing"

	"niddle_backend/internal/auth"
	"niddle_backend/internal/email"
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

func newResetService(mailer email.Provider) services.PasswordResetService {
	return services.NewPasswordResetService(
		repositories.NewUserRepository(),
		repositories.NewPasswordResetRepository(),
		mailer,
	)
}

func resetRowsFor(t *testing.T, db *gorm.DB, userID uint) []models.PasswordReset {
	t.Helper()
	var rows []models.PasswordReset
	require.NoError(t, db.Where("user_id = ?", userID).Find(&rows).Error)
	return rows
}

func TestPasswordResetRequest(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider()
	svc := newResetService(mailer)
	user := helpers.CreateUser(t, db, "Reset User", "reset@test.com", "oldpassword")

	err := svc.Request(context.Background(), db, user.Email)
	require.NoError(t, err)

	rows := resetRowsFor(t, db, user.ID)
	require.Len(t, rows, 1)
	assert.GreaterOrEqual(t, rows[0].Code, 99999)
	assert.LessOrEqual(t, rows[0].Code, 1000000)

	sent := mailer.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, user.Email, sent[0].To)
	assert.Equal(t, rows[0].Code, sent[0].Code)
}

func TestPasswordResetRequestUnknownEmail(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider()
	svc := newResetService(mailer)

	err := svc.Request(context.Background(), db, "nobody@test.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Empty(t, mailer.Sent(), "no mail goes out for an unknown address")
}

func TestPasswordResetRequestSupersedesOldCode(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider()
	svc := newResetService(mailer)
	user := helpers.CreateUser(t, db, "Reset User", "reset@test.com", "oldpassword")

	require.NoError(t, svc.Request(context.Background(), db, user.Email))
	require.NoError(t, svc.Request(context.Background(), db, user.Email))

	rows := resetRowsFor(t, db, user.ID)
	require.Len(t, rows, 1, "a new request replaces the old code")

	sent := mailer.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, rows[0].Code, sent[1].Code, "the live code is the one mailed last")
}

func TestPasswordResetRequestMailFailureKeepsOldCode(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider()
	svc := newResetService(mailer)
	user := helpers.CreateUser(t, db, "Reset User", "reset@test.com", "oldpassword")

	require.NoError(t, svc.Request(context.Background(), db, user.Email))
	rows := resetRowsFor(t, db, user.ID)
	require.Len(t, rows, 1)
	liveCode := rows[0].Code

	mailer.FailWith(errors.New("smtp relay down"))
	err := svc.Request(context.Background(), db, user.Email)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeMailError, appErr.Code)

	rows = resetRowsFor(t, db, user.ID)
	require.Len(t, rows, 1, "the failed request must not touch the stored code")
	assert.Equal(t, liveCode, rows[0].Code, "the previously mailed code stays live")
}

func TestPasswordResetConsume(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider()
	svc := newResetService(mailer)
	user := helpers.CreateUser(t, db, "Reset User", "reset@test.com", "oldpassword")

	require.NoError(t, svc.Request(context.Background(), db, user.Email))
	rows := resetRowsFor(t, db, user.ID)
	require.Len(t, rows, 1)

	err := svc.Reset(context.Background(), db, &dto.PasswordResetRequest{
		Email:           user.Email,
		Code:            rows[0].Code,
		Password:        "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	require.NoError(t, err)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.True(t, auth.CheckPasswordHash("newpassword1", updated.Password))
	assert.Empty(t, resetRowsFor(t, db, user.ID), "the code is spent")
}

func TestPasswordResetMismatchBeforeLookup(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newResetService(email.NewMockProvider())

	// Unknown email, but the password pair is checked first.
	err := svc.Reset(context.Background(), db, &dto.PasswordResetRequest{
		Email:           "nobody@test.com",
		Code:            123456,
		Password:        "newpassword1",
		ConfirmPassword: "different",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
}

func TestPasswordResetWrongCode(t *testing.T) {
	db := helpers.NewTestDB(t)
	mailer := email.NewMockProvider()
	svc := newResetService(mailer)
	user := helpers.CreateUser(t, db, "Reset User", "reset@test.com", "oldpassword")

	require.NoError(t, svc.Request(context.Background(), db, user.Email))
	rows := resetRowsFor(t, db, user.ID)
	require.Len(t, rows, 1)

	err := svc.Reset(context.Background(), db, &dto.PasswordResetRequest{
		Email:           user.Email,
		Code:            rows[0].Code + 1,
		Password:        "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCode)

	var unchanged models.User
	require.NoError(t, db.First(&unchanged, user.ID).Error)
	assert.True(t, auth.CheckPasswordHash("oldpassword", unchanged.Password))
	assert.Len(t, resetRowsFor(t, db, user.ID), 1, "the code stays live")
}

func TestPasswordResetWithoutRequest(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newResetService(email.NewMockProvider())
	user := helpers.CreateUser(t, db, "Reset User", "reset@test.com", "oldpassword")

	err := svc.Reset(context.Background(), db, &dto.PasswordResetRequest{
		Email:           user.Email,
		Code:            123456,
		Password:        "newpassword1",
		ConfirmPassword: "newpassword1",
	})
	assert.ErrorIs(t, err, apperrors.ErrResetNotFound)
}
