package repositories

import (
	"context"
	"time"

	"github.com/tienLD2005/hotel-booking-auth/domain"
	"gorm.io/gorm"
)

// RefreshTokenRepositoryImpl implements domain.RefreshTokenRepository using GORM
type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

// DBRefreshToken represents the database model for RefreshToken (with GORM tags)
type DBRefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	AccountID uint      `gorm:"index;not null"`
	Value     string    `gorm:"uniqueIndex;size:64;not null"`
	ClientIP  string    `gorm:"size:45;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBRefreshToken) TableName() string {
	return "refresh_tokens"
}

// NewRefreshTokenRepository creates a new refresh-token repository
func NewRefreshTokenRepository(db *gorm.DB) domain.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

// Save implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Save(ctx context.Context, token *domain.RefreshToken) error {
	dbToken := r.domainToDB(token)
	if err := r.db.WithContext(ctx).Save(dbToken).Error; err != nil {
		return err
	}
	token.ID = dbToken.ID
	return nil
}

// FindByValue implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) FindByValue(ctx context.Context, value string) (*domain.RefreshToken, error) {
	var dbToken DBRefreshToken
	err := r.db.WithContext(ctx).Where("value = ?", value).First(&dbToken).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}
	return r.dbToDomain(&dbToken), nil
}

// FindByAccountAndClientIP implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) FindByAccountAndClientIP(ctx context.Context, accountID uint, clientIP string) (*domain.RefreshToken, error) {
	var dbToken DBRefreshToken
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND client_ip = ?", accountID, clientIP).
		First(&dbToken).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrInvalidRefreshToken
		}
		return nil, err
	}
	return r.dbToDomain(&dbToken), nil
}

// FindAllByAccountOrderByExpiry implements domain.RefreshTokenRepository.
// Tokens are returned soonest-expiring first.
func (r *RefreshTokenRepositoryImpl) FindAllByAccountOrderByExpiry(ctx context.Context, accountID uint) ([]*domain.RefreshToken, error) {
	var dbTokens []DBRefreshToken
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("expires_at asc").
		Find(&dbTokens).Error
	if err != nil {
		return nil, err
	}

	tokens := make([]*domain.RefreshToken, 0, len(dbTokens))
	for i := range dbTokens {
		tokens = append(tokens, r.dbToDomain(&dbTokens[i]))
	}
	return tokens, nil
}

// Delete implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&DBRefreshToken{}, id).Error
}

// DeleteByAccount implements domain.RefreshTokenRepository
func (r *RefreshTokenRepositoryImpl) DeleteByAccount(ctx context.Context, accountID uint) error {
	return r.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&DBRefreshToken{}).Error
}

// domainToDB converts domain token to database token
func (r *RefreshTokenRepositoryImpl) domainToDB(token *domain.RefreshToken) *DBRefreshToken {
	return &DBRefreshToken{
		ID:        token.ID,
		AccountID: token.AccountID,
		Value:     token.Value,
		ClientIP:  token.ClientIP,
		ExpiresAt: token.ExpiresAt,
	}
}

// dbToDomain converts database token to domain token
func (r *RefreshTokenRepositoryImpl) dbToDomain(dbToken *DBRefreshToken) *domain.RefreshToken {
	return &domain.RefreshToken{
		ID:        dbToken.ID,
		AccountID: dbToken.AccountID,
		Value:     dbToken.Value,
		ClientIP:  dbToken.ClientIP,
		ExpiresAt: dbToken.ExpiresAt,
		CreatedAt: dbToken.CreatedAt,
		UpdatedAt: dbToken.UpdatedAt,
	}
}
