package repo

import (
	"accountd/app/models"

	"gorm.io/gorm"
)

type TokenRepository struct{ db *gorm.DB }

func NewTokenRepository(db *gorm.DB) *TokenRepository { return &TokenRepository{db: db} }

func (r *TokenRepository) Create(t *models.Token) error { return r.db.Create(t).Error }

func (r *TokenRepository) FindByToken(value string) (*models.Token, error) {
	var t models.Token
	if err := r.db.Preload("User").Where("token = ?", value).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteByToken removes the row if present; deleting an unknown value is not
// an error.
func (r *TokenRepository) DeleteByToken(value string) error {
	return r.db.Where("token = ?", value).Delete(&models.Token{}).Error
}
