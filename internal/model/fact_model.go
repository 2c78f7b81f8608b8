package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FactModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Fact       string    `gorm:"type:text;not null;uniqueIndex:idx_cat_facts_active_fact,where:is_active = true" json:"fact"`
	LikesCount int64     `gorm:"default:0" json:"likes_count"`
	IsActive   bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (FactModel) TableName() string {
	return "cat_facts"
}

func (f *FactModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return nil
}
