package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Hosni10/boatify-server/internal/auth"
	"github.com/Hosni10/boatify-server/internal/domain"
	"github.com/Hosni10/boatify-server/internal/domain/user"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SignupInput holds the fields accepted on account registration.
type SignupInput struct {
	Email       string
	Password    string
	CompanyName string
	Role        user.Role
}

// AuthResult carries the authenticated user and its access token.
type AuthResult struct {
	User  *user.User
	Token string
}

// AuthService handles registration and login.
type AuthService struct {
	users  user.UserRepository
	jwt    *auth.JWTManager
	logger *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users user.UserRepository, jwt *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, jwt: jwt, logger: logger}
}

// Signup registers a new account and signs an access token for it.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	if in.Password == "" {
		return nil, domain.NewValidationError("password is required")
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return nil, domain.NewConflictError("user already exists")
	}
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := in.Role
	if role == "" {
		role = user.RoleCustomer
	}
	companyID := "company_" + strconv.FormatInt(time.Now().UnixMilli(), 10)

	u, err := user.NewUser(in.Email, string(hash), in.CompanyName, companyID, role)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.jwt.Generate(u)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID().String()),
		zap.String("company_id", u.CompanyID()),
	)
	return &AuthResult{User: u, Token: token}, nil
}

// Login authenticates by email and password. Unknown email and wrong password
// produce the same error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(password)); err != nil {
		return nil, domain.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.jwt.Generate(u)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{User: u, Token: token}, nil
}
