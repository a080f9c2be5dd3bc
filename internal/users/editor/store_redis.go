package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thuandang/polyglot/internal/platform/apperr"
	"github.com/thuandang/polyglot/internal/platform/constants"
)

// RedisRefreshTokenRepository implements [RefreshTokenRepository] using Redis.
//
// Keys are hashed tokens under [constants.RedisPrefixRefreshToken]; values
// are editor IDs. Expiry is delegated entirely to Redis TTLs.
type RedisRefreshTokenRepository struct {
	client *redis.Client
}

// NewRefreshTokenRepository creates a new Redis-backed RefreshTokenRepository.
func NewRefreshTokenRepository(client *redis.Client) *RedisRefreshTokenRepository {
	return &RedisRefreshTokenRepository{client: client}
}

func refreshTokenKey(tokenHash string) string {
	return constants.RedisPrefixRefreshToken + tokenHash
}

/*
Set stores a hashed refresh token with its owning editorID and TTL.

Parameters:
  - context: context.Context
  - tokenHash: string (SHA-256 of the opaque token)
  - editorID: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisRefreshTokenRepository) Set(context context.Context, tokenHash, editorID string, ttl time.Duration) error {
	if err := repository.client.Set(context, refreshTokenKey(tokenHash), editorID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_set_failed: %w", err)
	}
	return nil
}

/*
Get retrieves the editorID for a hashed token.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - string: Owning editor ID
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisRefreshTokenRepository) Get(context context.Context, tokenHash string) (string, error) {
	editorID, err := repository.client.Get(context, refreshTokenKey(tokenHash)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Refresh token is invalid or expired")
		}
		return "", fmt.Errorf("redis_refresh_token_get_failed: %w", err)
	}
	return editorID, nil
}

/*
Delete removes the hashed token from Redis. Deleting an absent key is not
an error.
*/
func (repository *RedisRefreshTokenRepository) Delete(context context.Context, tokenHash string) error {
	if err := repository.client.Del(context, refreshTokenKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_refresh_token_delete_failed: %w", err)
	}
	return nil
}
