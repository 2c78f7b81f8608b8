package entity

import "time"

// Fact is a stored cat fact. Soft-deleted facts stay in the store with
// IsActive=false and disappear from every read path.
type Fact struct {
	ID         string    `json:"id"`
	Text       string    `json:"fact"`
	LikesCount int64     `json:"likes_count"`
	IsActive   bool      `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

type Like struct {
	ID        string    `json:"id"`
	FactID    string    `json:"fact_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
