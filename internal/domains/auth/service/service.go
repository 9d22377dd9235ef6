package service

import (
	"context"
	"fmt"

	"portal/config"
	"portal/infras/jwt"
	"portal/infras/otel"
	"portal/internal/domains/auth/model/dto"
	userModel "portal/internal/domains/user/model"
	userRepo "portal/internal/domains/user/repository"
	"portal/permissions"
	"portal/shared"
	"portal/shared/constant"
	gDto "portal/shared/dto"
	"portal/shared/failure"
	"portal/shared/password"
	"portal/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	userRepo    userRepo.User
	staffRepo   userRepo.StaffProfile
	studentRepo userRepo.StudentProfile
	cfg         *config.Config
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(userRepo userRepo.User, staffRepo userRepo.StaffProfile, studentRepo userRepo.StudentProfile, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:    userRepo,
		staffRepo:   staffRepo,
		studentRepo: studentRepo,
		cfg:         cfg,
		otel:        otel,
		jwtService:  jwt,
	}
}

// Register creates the user and provisions its student profile in the same
// call. A taken student ID surfaces as a conflict instead of being dropped.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.BadRequestFromString("email already registered")
	}

	if req.StudentID != nil {
		taken, err := s.studentRepo.Exist(ctx, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldStudentID,
					Operator: gDto.FilterOperatorEq,
					Value:    *req.StudentID,
					Table:    userModel.StudentProfileTableName,
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to check student id")

			return fmt.Errorf("failed to check student id: %w", err)
		}

		if taken {
			return failure.Conflict("student id already registered")
		}
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	if err = s.studentRepo.Insert(ctx, req.ToStudentProfileModel(user.ID)); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to provision student profile")

		return fmt.Errorf("failed to provision student profile: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password")
	}

	if !user.Active {
		return res, failure.BadRequestFromString("user account is deactivated")
	}

	role, err := s.classify(ctx, user)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.Username)

	if err := s.userRepo.Update(ctx, updatedFields, emailFilter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	res.FromTokenPair(tokenPair, role, permissions.LandingWithNext(role, req.Next))

	return res, nil
}

// classify resolves the user's single role. A portal staff profile counts
// the same as the staff flag on the account itself.
func (s *serviceImpl) classify(ctx context.Context, user userModel.User) (string, error) {
	isStaff := user.IsStaff
	hasStudentProfile := false

	if !user.IsSuperuser && !isStaff {
		staff, err := s.staffRepo.Exist(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldUserID,
					Operator: gDto.FilterOperatorEq,
					Value:    user.ID,
					Table:    userModel.StaffProfileTableName,
				},
				gDto.Filter{
					Field:    userModel.FieldIsPortalStaff,
					Operator: gDto.FilterOperatorEq,
					Value:    true,
					Table:    userModel.StaffProfileTableName,
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to check staff profile")

			return constant.Empty, fmt.Errorf("failed to check staff profile: %w", err)
		}

		isStaff = staff
	}

	if !user.IsSuperuser && !isStaff {
		exists, err := s.studentRepo.Exist(ctx, gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    userModel.FieldUserID,
					Operator: gDto.FilterOperatorEq,
					Value:    user.ID,
					Table:    userModel.StudentProfileTableName,
				},
			},
		})
		if err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("failed to check student profile")

			return constant.Empty, fmt.Errorf("failed to check student profile: %w", err)
		}

		hasStudentProfile = exists
	}

	return permissions.Classify(permissions.Actor{
		Authenticated:     true,
		IsSuperuser:       user.IsSuperuser,
		IsStaff:           isStaff,
		HasStudentProfile: hasStudentProfile,
	}), nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user")
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, user.Username)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
