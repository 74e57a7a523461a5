package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OmarHamdi11/blog-rest-api/auth"
	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

func newAuthFixture() (*AuthService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	tokens := auth.NewTokenProvider("test-secret", time.Hour)
	return NewAuthService(userRepo, tokens), userRepo
}

func validRegisterDTO() models.RegisterDTO {
	return models.RegisterDTO{
		Name:     "Some Reader",
		Username: "reader",
		Email:    "reader@example.com",
		Password: "correct horse battery staple",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	service, userRepo := newAuthFixture()

	require.NoError(t, service.Register(validRegisterDTO()))

	stored, err := userRepo.FindByUsernameOrEmail("reader")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleUser, stored.Role)
	assert.NotEqual(t, "correct horse battery staple", stored.Password)

	token, err := service.Login(models.LoginDTO{
		UsernameOrEmail: "reader",
		Password:        "correct horse battery staple",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	// email works as the login name too
	_, err = service.Login(models.LoginDTO{
		UsernameOrEmail: "reader@example.com",
		Password:        "correct horse battery staple",
	})
	require.NoError(t, err)
}

func TestRegisterDuplicateConflicts(t *testing.T) {
	service, _ := newAuthFixture()
	require.NoError(t, service.Register(validRegisterDTO()))

	err := service.Register(validRegisterDTO())
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))

	other := validRegisterDTO()
	other.Username = "other"
	err = service.Register(other) // same email, different username
	require.Error(t, err)
	assert.True(t, errs.IsConflict(err))
}

func TestRegisterValidation(t *testing.T) {
	service, _ := newAuthFixture()

	dto := validRegisterDTO()
	dto.Password = "short"
	err := service.Register(dto)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))

	dto = validRegisterDTO()
	dto.Email = "not-an-email"
	err = service.Register(dto)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, _ := newAuthFixture()
	require.NoError(t, service.Register(validRegisterDTO()))

	_, err := service.Login(models.LoginDTO{UsernameOrEmail: "reader", Password: "wrong password"})
	require.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))

	_, err = service.Login(models.LoginDTO{UsernameOrEmail: "nobody", Password: "whatever"})
	require.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))
}
