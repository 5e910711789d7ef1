package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUpdateProfile(t *testing.T) {
	userRepo := newMemUserRepo()
	authSvc := NewAuthService(userRepo, nil, testJWTSecret, testLogger())
	svc := NewUserService(userRepo, testLogger())

	response, err := authSvc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	phone := "+14155550123"
	user, err := svc.UpdateProfile(context.Background(), response.User.ID, &UpdateProfileRequest{
		Phone: &phone,
	})
	require.NoError(t, err)

	assert.Equal(t, phone, user.Phone)
	// Untouched fields survive a partial update.
	assert.Equal(t, "Asha", user.FirstName)
	assert.Equal(t, "Verma", user.LastName)
}

func TestChangePassword(t *testing.T) {
	userRepo := newMemUserRepo()
	authSvc := NewAuthService(userRepo, nil, testJWTSecret, testLogger())
	svc := NewUserService(userRepo, testLogger())

	response, err := authSvc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), response.User.ID, "wrong-password", "N3w$ecret!!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(context.Background(), response.User.ID, "Sup3r$ecret", "N3w$ecret!!")
	require.NoError(t, err)

	_, err = authSvc.Login(context.Background(), &LoginRequest{
		Email: "asha@example.com", Password: "N3w$ecret!!",
	})
	require.NoError(t, err)

	_, err = authSvc.Login(context.Background(), &LoginRequest{
		Email: "asha@example.com", Password: "Sup3r$ecret",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteAccount(t *testing.T) {
	userRepo := newMemUserRepo()
	authSvc := NewAuthService(userRepo, nil, testJWTSecret, testLogger())
	svc := NewUserService(userRepo, testLogger())

	response, err := authSvc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAccount(context.Background(), response.User.ID))

	_, err = svc.GetProfile(context.Background(), response.User.ID)
	assert.Error(t, err)

	err = svc.DeleteAccount(context.Background(), primitive.NewObjectID())
	assert.Error(t, err)
}
