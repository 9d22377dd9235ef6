package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"portal/config"
	"portal/infras/jwt"
	jwtMocks "portal/infras/jwt/mocks"
	"portal/infras/otel/mocks"
	"portal/internal/domains/auth/model/dto"
	"portal/internal/domains/auth/service"
	userMocks "portal/internal/domains/user/mocks"
	userModel "portal/internal/domains/user/model"
	"portal/permissions"
	"portal/shared/constant"
	"portal/shared/failure"
	gModel "portal/shared/model"
	"portal/shared/timezone"
)

// bcrypt of "password"
const hashedPassword = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func newUser(id, email string) userModel.User {
	return userModel.User{
		ID:       id,
		Username: "user-" + id,
		Email:    email,
		Password: hashedPassword,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockStaffRepo := userMocks.NewMockStaffProfile(ctrl)
	mockStudentRepo := userMocks.NewMockStudentProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockStaffRepo, mockStudentRepo, &config.Config{}, mockOtel, mockJWT)

	studentID := "20240001"

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful registration provisions a student profile",
			req: dto.RegisterRequest{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockStudentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, profile userModel.StudentProfile) error {
						assert.NotEmpty(t, profile.UserID)
						assert.Nil(t, profile.StudentID)
						assert.True(t, profile.IsActiveStudent)

						return nil
					})
			},
		},
		{
			name: "email already registered",
			req: dto.RegisterRequest{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "student id collision is a conflict",
			req: dto.RegisterRequest{
				Username:  "jdoe",
				Email:     "jdoe@example.com",
				Password:  "password123",
				StudentID: &studentID,
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "profile insert failure surfaces",
			req: dto.RegisterRequest{
				Username: "jdoe",
				Email:    "jdoe@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockStudentRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failureCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockStaffRepo := userMocks.NewMockStaffProfile(ctrl)
	mockStudentRepo := userMocks.NewMockStudentProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockStaffRepo, mockStudentRepo, &config.Config{}, mockOtel, mockJWT)

	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    900,
	}

	tests := []struct {
		name        string
		req         dto.LoginRequest
		setupMock   func()
		wantErr     bool
		wantRole    string
		wantLanding string
	}{
		{
			name: "student login lands on the reservation page",
			req:  dto.LoginRequest{Email: "student@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("student-1", "student@example.com"), nil)

				mockStaffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("student-1", "student@example.com", constant.RoleStudent).
					Return(tokenPair, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRole:    constant.RoleStudent,
			wantLanding: permissions.LandingStudent,
		},
		{
			name: "student next override is honored",
			req:  dto.LoginRequest{Email: "student@example.com", Password: "password", Next: "/programs/mba"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("student-1", "student@example.com"), nil)

				mockStaffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("student-1", "student@example.com", constant.RoleStudent).
					Return(tokenPair, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRole:    constant.RoleStudent,
			wantLanding: "/programs/mba",
		},
		{
			name: "staff login ignores next",
			req:  dto.LoginRequest{Email: "staff@example.com", Password: "password", Next: "/programs/mba"},
			setupMock: func() {
				staff := newUser("staff-1", "staff@example.com")
				staff.IsStaff = true

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(staff, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("staff-1", "staff@example.com", constant.RoleStaff).
					Return(tokenPair, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRole:    constant.RoleStaff,
			wantLanding: permissions.LandingStaff,
		},
		{
			name: "portal staff profile counts as staff",
			req:  dto.LoginRequest{Email: "clerk@example.com", Password: "password", Next: "/programs/mba"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("clerk-1", "clerk@example.com"), nil)

				mockStaffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("clerk-1", "clerk@example.com", constant.RoleStaff).
					Return(tokenPair, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRole:    constant.RoleStaff,
			wantLanding: permissions.LandingStaff,
		},
		{
			name: "superuser outranks staff flag",
			req:  dto.LoginRequest{Email: "root@example.com", Password: "password"},
			setupMock: func() {
				root := newUser("root-1", "root@example.com")
				root.IsSuperuser = true
				root.IsStaff = true

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(root, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("root-1", "root@example.com", constant.RoleSuperuser).
					Return(tokenPair, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRole:    constant.RoleSuperuser,
			wantLanding: permissions.LandingSuperuser,
		},
		{
			name: "user without profile is public",
			req:  dto.LoginRequest{Email: "visitor@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("visitor-1", "visitor@example.com"), nil)

				mockStaffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("visitor-1", "visitor@example.com", constant.RolePublic).
					Return(tokenPair, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantRole:    constant.RolePublic,
			wantLanding: permissions.LandingPublic,
		},
		{
			name: "user not found",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("not found"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "student@example.com", Password: "wrongpassword"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("student-1", "student@example.com"), nil)
			},
			wantErr: true,
		},
		{
			name: "inactive account",
			req:  dto.LoginRequest{Email: "student@example.com", Password: "password"},
			setupMock: func() {
				inactive := newUser("student-1", "student@example.com")
				inactive.Active = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "student@example.com", Password: "password"},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(newUser("student-1", "student@example.com"), nil)

				mockStaffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockStudentRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("student-1", "student@example.com", constant.RoleStudent).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tokenPair.AccessToken, res.AccessToken)
			assert.Equal(t, tt.wantRole, res.Role)
			assert.Equal(t, tt.wantLanding, res.Landing)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockStaffRepo := userMocks.NewMockStaffProfile(ctrl)
	mockStudentRepo := userMocks.NewMockStudentProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockStaffRepo, mockStudentRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("valid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("valid-refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh"})

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		mockJWT.EXPECT().
			RefreshTokens("bad-refresh").
			Return(nil, errors.New("expired"))

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-refresh"})

		assert.Error(t, err)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockStaffRepo := userMocks.NewMockStaffProfile(ctrl)
	mockStudentRepo := userMocks.NewMockStudentProfile(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockUserRepo, mockStaffRepo, mockStudentRepo, &config.Config{}, mockOtel, mockJWT)

	t.Run("successful change", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(newUser("user-1", "user@example.com"), nil)

		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "newpassword1",
		}, "user-1")

		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(newUser("user-1", "user@example.com"), nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrongpassword",
			NewPassword:     "newpassword1",
		}, "user-1")

		assert.Error(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "password",
			NewPassword:     "newpassword1",
		}, "missing")

		assert.Error(t, err)
	})
}

func failureCode(err error) int {
	return failure.GetCode(err)
}
