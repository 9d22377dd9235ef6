package dto_test

import (
	"testing"

	"portal/infras/jwt"
	"portal/internal/domains/auth/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	firstName := "Jane"
	req := dto.RegisterRequest{
		Username:  "jane.doe",
		Email:     "jane@example.com",
		Password:  "plaintext-ignored",
		FirstName: &firstName,
	}

	user := req.ToUserModel("hashed-password")

	assert.NotEmpty(t, user.ID, "expected ID to be generated")
	assert.Equal(t, req.Username, user.Username)
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password, "model carries the hash, never the plaintext")
	assert.Equal(t, &firstName, user.FirstName)
	assert.False(t, user.IsSuperuser, "self-registration never grants superuser")
	assert.False(t, user.IsStaff, "self-registration never grants staff")
	assert.True(t, user.Active)
	assert.Equal(t, req.Username, user.CreatedBy)
	assert.False(t, user.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestRegisterRequest_ToStudentProfileModel(t *testing.T) {
	studentID := "STU-001"
	req := dto.RegisterRequest{
		Username:  "jane.doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		StudentID: &studentID,
	}

	profile := req.ToStudentProfileModel("user-1")

	assert.NotEmpty(t, profile.ID, "expected ID to be generated")
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, &studentID, profile.StudentID)
	assert.True(t, profile.IsActiveStudent)
	assert.Equal(t, req.Username, profile.CreatedBy)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair, "staff", "/staff")

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
	assert.Equal(t, "staff", response.Role)
	assert.Equal(t, "/staff", response.Landing)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}
