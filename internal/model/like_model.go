package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	FactID    string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_fact_user" json:"fact_id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_fact_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (LikeModel) TableName() string {
	return "fact_likes"
}

func (l *LikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
