/*
Package editor implements authentication for content-mutating accounts.

It handles credential verification, RS256 access-token issuance, and refresh
token rotation. Refresh tokens are opaque random values stored hashed in
Redis with a TTL; access tokens are stateless JWTs verified by middleware.
*/
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thuandang/polyglot/internal/platform/apperr"
	"github.com/thuandang/polyglot/internal/platform/constants"
	"github.com/thuandang/polyglot/internal/platform/sec"
	"github.com/thuandang/polyglot/internal/platform/validate"
	"github.com/thuandang/polyglot/pkg/uuidv7"
)

// refreshTokenLength is the entropy, in bytes, of an opaque refresh token.
const refreshTokenLength = 32

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(editorID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements editor authentication use cases.
type Service struct {
	repo          Repository
	refreshTokens RefreshTokenRepository
	tokenProvider TokenProvider
	logger        *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(repo Repository, refreshTokens RefreshTokenRepository, tokenProvider TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		refreshTokens: refreshTokens,
		tokenProvider: tokenProvider,
		logger:        logger,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string `json:"login"` // Username or email
	Password string `json:"password"`
}

// Session represents a successfully established editor session.
type Session struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	Editor                *Editor   `json:"editor"`
}

/*
Login validates editor credentials and issues a token pair.

Description: Looks the account up by email or username, performs a bcrypt
constant-time comparison, and issues a short-lived access token plus an
opaque refresh token tracked in Redis. All credential failures collapse to
the same generic message to prevent account enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Transport-ready session tokens
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	account, err := service.repo.FindByEmail(context, input.Login)
	if err != nil {
		account, err = service.repo.FindByUsername(context, input.Login)
	}
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !account.Active {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, account)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "editor_logged_in",
		slog.String("editor_id", account.ID),
		slog.String("role", string(account.Role)),
	)
	return session, nil
}

/*
RefreshSession rotates a refresh token into a fresh token pair.

Description: Verifies the opaque token against Redis, deletes it to prevent
replay, and issues a new pair. A token that is absent (expired, revoked, or
already rotated) fails as Unauthorized.
*/
func (service *Service) RefreshSession(context context.Context, refreshToken string) (*Session, error) {
	tokenHash := sec.HashToken(refreshToken)

	editorID, err := service.refreshTokens.Get(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: consume the old token before issuing a replacement.
	if err := service.refreshTokens.Delete(context, tokenHash); err != nil {
		return nil, fmt.Errorf("editor_refresh_rotate_failed: %w", err)
	}

	account, err := service.repo.FindByID(context, editorID)
	if err != nil || !account.Active {
		return nil, apperr.Unauthorized("Editor not found or suspended")
	}

	return service.issueSession(context, account)
}

/*
Logout revokes the refresh token. Revoking an unknown token succeeds, making
the operation idempotent.
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	return service.refreshTokens.Delete(context, sec.HashToken(refreshToken))
}

// GetEditor fetches an editor account by ID.
func (service *Service) GetEditor(context context.Context, id string) (*Editor, error) {
	return service.repo.FindByID(context, id)
}

// # Account Management

// CreateEditorInput carries the fields needed to enroll a new editor.
type CreateEditorInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

/*
CreateEditor enrolls a new editor account (admin only at the HTTP layer).

Description: Enforces identity uniqueness, hashes the password with bcrypt,
and assigns a time-sortable UUID v7 identity.
*/
func (service *Service) CreateEditor(context context.Context, input CreateEditorInput) (*Editor, error) {
	validator := &validate.Validator{}
	validator.Required("username", input.Username).MinLen("username", input.Username, 3).MaxLen("username", input.Username, 50)
	validator.Required("email", input.Email).MaxLen("email", input.Email, 255)
	validator.Required("password", input.Password).MinLen("password", input.Password, 10)
	validator.OneOf("role", input.Role,
		string(sec.RoleAdmin),
		string(sec.RoleEditor),
		string(sec.RoleTranslator),
	)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if _, err := service.repo.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.repo.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("editor_hash_failed: %w", err)
	}

	now := time.Now().UTC()
	account := &Editor{
		ID:           uuidv7.Must(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         sec.EditorRole(input.Role),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := service.repo.Create(context, account); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "editor_created",
		slog.String("editor_id", account.ID),
		slog.String("role", string(account.Role)),
	)
	return account, nil
}

// issueSession generates the access/refresh token pair for an account.
func (service *Service) issueSession(context context.Context, account *Editor) (*Session, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(
		account.ID, account.Username, string(account.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("editor_access_token_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(refreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("editor_refresh_token_failed: %w", err)
	}

	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	if err := service.refreshTokens.Set(context, sec.HashToken(refreshToken), account.ID, constants.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("editor_refresh_store_failed: %w", err)
	}

	return &Session{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Editor:                account,
	}, nil
}
