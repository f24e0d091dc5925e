package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tulipkids/foundation-api/internal/config"
	"github.com/tulipkids/foundation-api/internal/domain"
	"github.com/tulipkids/foundation-api/internal/repository"
)

var (
	ErrAdminEmailExists = repository.ErrAdminEmailExists
	ErrAdminNotFound    = repository.ErrAdminNotFound
	ErrWrongPassword    = errors.New("wrong password")
)

type AdminRepository interface {
	Create(ctx context.Context, admin domain.AdminUser) (domain.AdminUser, error)
	FindByEmail(ctx context.Context, email string) (domain.AdminUser, error)
}

type AuthService struct {
	conf *config.AdminConfig
	repo AdminRepository
}

func NewAuthService(conf *config.AdminConfig, repo AdminRepository) *AuthService {
	return &AuthService{
		conf: conf,
		repo: repo,
	}
}

// Login checks the configured dashboard credentials first and falls back
// to an admin_users lookup by email. Stored bcrypt hashes are verified;
// legacy rows whose hash does not parse keep the original presence-only
// behavior.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.AdminUser, error) {
	if s.conf != nil && s.conf.Email != "" {
		emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.conf.Email)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.conf.Password)) == 1
		if emailOK && passwordOK {
			return domain.AdminUser{Email: s.conf.Email}, nil
		}
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return domain.AdminUser{}, ErrAdminNotFound
		}

		return domain.AdminUser{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if strings.HasPrefix(admin.PasswordHash, "$2") {
		if err = bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
			return domain.AdminUser{}, ErrWrongPassword
		}
	}

	return admin, nil
}

// CreateAdmin stores a new dashboard user with a bcrypt password hash.
func (s *AuthService) CreateAdmin(ctx context.Context, email, password string) (domain.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AdminUser{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	admin, err := s.repo.Create(ctx, domain.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrAdminEmailExists) {
			return domain.AdminUser{}, ErrAdminEmailExists
		}

		return domain.AdminUser{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return admin, nil
}
