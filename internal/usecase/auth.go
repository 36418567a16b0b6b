package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/xavierca1/agency-site/internal/entity"
)

var errInvalidCredentials = &DomainError{Code: CodeUnauthorized, Message: "invalid credentials"}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.AdminUser
}

type AuthUseCase struct {
	Repo   AdminRepositoryInterface
	Hasher PasswordHasher
	Tokens TokenIssuer
}

func NewAuthUseCase(repo AdminRepositoryInterface, hasher PasswordHasher, tokens TokenIssuer) *AuthUseCase {
	return &AuthUseCase{Repo: repo, Hasher: hasher, Tokens: tokens}
}

func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, validationError("username and password are required")
	}

	user, err := uc.Repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, databaseError("failed to load admin user", err)
	}

	if err := uc.Hasher.Compare(user.Password, input.Password); err != nil {
		return nil, errInvalidCredentials
	}

	token, expiresAt, err := uc.Tokens.Issue(user)
	if err != nil {
		return nil, &TechnicalError{Code: "TOKEN_ERROR", Message: "failed to issue token", Err: err}
	}

	return &LoginOutput{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// EnsureAdmin cria o admin inicial se ele ainda não existe. Pode rodar em
// todo boot: se o usuário já está lá, nada muda (nem a senha).
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, username, password, email string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, validationError("admin username and password are required")
	}

	_, err := uc.Repo.FindByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return false, databaseError("failed to load admin user", err)
	}

	hash, err := uc.Hasher.Hash(password)
	if err != nil {
		return false, &TechnicalError{Code: "HASH_ERROR", Message: "failed to hash password", Err: err}
	}

	if err := uc.Repo.Create(ctx, entity.NewAdminUser(username, hash, email)); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return false, nil
		}
		return false, databaseError("failed to create admin user", err)
	}
	return true, nil
}
