package service

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/md-ali-0/skillsync-server/internal/auth/domain UserRepository
//go:generate mockgen -destination=../../mocks/mock_mailer.go -package=mocks github.com/md-ali-0/skillsync-server/internal/auth/service Mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/md-ali-0/skillsync-server/config"
	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	"github.com/md-ali-0/skillsync-server/internal/auth/dto"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
)

// Mailer delivers outbound mail. Failures are logged by the caller and never
// retried inline.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type AuthService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	mailer Mailer
	cfg    *config.Config
	logger *slog.Logger
}

func NewAuthService(repo domain.UserRepository, tokens TokenGenerator, mailer Mailer, cfg *config.Config, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
		cfg:    cfg,
		logger: logger,
	}
}

// Signup creates a regular credential. The role is always forced to USER;
// elevated roles only exist through the vendor signup flow or an admin.
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) (*domain.User, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hash, err := HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// VendorSignup creates the credential, vendor profile and shop as one
// atomic unit through the repository transaction.
func (s *AuthService) VendorSignup(ctx context.Context, input dto.VendorSignupInput) (*domain.User, *domain.Shop, error) {
	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, autherror.ErrEmailAlreadyInUse
	}
	if input.ShopName == "" {
		return nil, nil, autherror.Validation("shop name is required")
	}

	hash, err := HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleVendor,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	vendor := &domain.Vendor{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	shop := &domain.Shop{
		ID:          uuid.New().String(),
		VendorID:    vendor.ID,
		Name:        input.ShopName,
		Description: input.ShopDescription,
		LogoURL:     input.ShopLogoURL,
		Status:      domain.ShopActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.CreateVendorWithShop(ctx, user, vendor, shop); err != nil {
		return nil, nil, err
	}

	return user, shop, nil
}

// Signin verifies the credential and issues an access/refresh token pair.
// Missing, suspended, deleted and wrong-password cases all return the same
// ErrInvalidCredentials; the real reason is only logged.
func (s *AuthService) Signin(ctx context.Context, input dto.SigninInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Warn("signin rejected", "email", input.Email, "reason", "not found")
		return nil, autherror.ErrInvalidCredentials
	}
	if !user.CanAuthenticate() {
		s.logger.Warn("signin rejected", "email", input.Email, "reason", "inactive",
			"status", user.Status, "deleted", user.IsDeleted)
		return nil, autherror.ErrInvalidCredentials
	}
	if !VerifyPassword(input.Password, user.PasswordHash) {
		s.logger.Warn("signin rejected", "email", input.Email, "reason", "password mismatch")
		return nil, autherror.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID, string(user.Role), PurposeAccess)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.Issue(user.ID, string(user.Role), PurposeRefresh)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// subject must still exist and be active.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	claims, err := s.tokens.Verify(input.RefreshToken, PurposeRefresh)
	if err != nil {
		return nil, autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.CanAuthenticate() {
		s.logger.Warn("refresh rejected", "user_id", claims.UserID, "reason", "subject gone or inactive")
		return nil, autherror.ErrInvalidToken
	}

	accessToken, err := s.tokens.Issue(user.ID, string(user.Role), PurposeAccess)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{AccessToken: accessToken}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, principal domain.Principal, input dto.ChangePasswordInput) error {
	user, err := s.repo.GetByID(ctx, principal.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	if !VerifyPassword(input.OldPassword, user.PasswordHash) {
		return autherror.ErrIncorrectOldPassword
	}

	hash, err := HashPassword(input.NewPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, user.ID, hash)
}

// ForgotPassword mails a reset-purpose token. It reports success even when
// the email is unknown so the endpoint cannot be used to enumerate accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) error {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil || !user.CanAuthenticate() {
		s.logger.Info("password reset requested for unknown or inactive account", "email", input.Email)
		return nil
	}

	resetToken, err := s.tokens.Issue(user.ID, string(user.Role), PurposeReset)
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s?token=%s", s.cfg.ResetPasswordLink, resetToken)
	body := fmt.Sprintf(`<p>Dear User,</p>
<p>Click the link below to reset your password:</p>
<a href=%q>Reset Password</a>`, resetLink)

	// Token issuance stands regardless of delivery; a mail failure is
	// logged, not surfaced or retried.
	if err := s.mailer.Send(ctx, user.Email, "Reset your password", body); err != nil {
		s.logger.Error("failed to send password reset email", "email", user.Email, "error", err)
	}

	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	claims, err := s.tokens.Verify(input.Token, PurposeReset)
	if err != nil {
		return autherror.ErrInvalidToken
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrInvalidToken
	}

	hash, err := HashPassword(input.Password, s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, user.ID, hash)
}

// ToUserOutput strips the credential down to its public shape; the password
// hash never leaves the service layer.
func ToUserOutput(u *domain.User) dto.UserOutput {
	return dto.UserOutput{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Role:      string(u.Role),
		Status:    string(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
