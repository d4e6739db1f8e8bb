package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/tienLD2005/hotel-booking-auth/domain"
)

// CodeRepositoryImpl implements domain.CodeRepository using Redis.
// One record per account; Save overwrites any prior record, which gives the
// "at most one live code per account" invariant for free.
type CodeRepositoryImpl struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCodeRepository creates a new one-time-code repository. The Redis TTL is
// a housekeeping bound, not the code expiry: a consumed record must outlive
// the code's own expiry so it can serve as proof of verification, so the key
// TTL is deliberately much longer than the verification window. Expiry of the
// code itself is checked lazily against ExpiresAt.
func NewCodeRepository(client *redis.Client, ttl time.Duration) domain.CodeRepository {
	return &CodeRepositoryImpl{
		client: client,
		prefix: "otp:acct:",
		ttl:    ttl,
	}
}

// Save implements domain.CodeRepository
func (r *CodeRepositoryImpl) Save(ctx context.Context, code *domain.OneTimeCode) error {
	key := r.key(code.AccountID)
	data, err := json.Marshal(code)
	if err != nil {
		return fmt.Errorf("failed to marshal one-time code: %w", err)
	}

	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// FindByAccount implements domain.CodeRepository
func (r *CodeRepositoryImpl) FindByAccount(ctx context.Context, accountID uint) (*domain.OneTimeCode, error) {
	data, err := r.client.Get(ctx, r.key(accountID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrCodeNotFound
		}
		return nil, err
	}

	var code domain.OneTimeCode
	if err := json.Unmarshal([]byte(data), &code); err != nil {
		return nil, fmt.Errorf("failed to unmarshal one-time code: %w", err)
	}

	return &code, nil
}

// Delete implements domain.CodeRepository
func (r *CodeRepositoryImpl) Delete(ctx context.Context, accountID uint) error {
	return r.client.Del(ctx, r.key(accountID)).Err()
}

func (r *CodeRepositoryImpl) key(accountID uint) string {
	return fmt.Sprintf("%s%d", r.prefix, accountID)
}
