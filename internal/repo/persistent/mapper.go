package persistent

import (
	"cat-facts/internal/entity"
	"cat-facts/internal/model"
)

func ToFactEntity(m *model.FactModel) *entity.Fact {
	if m == nil {
		return nil
	}

	return &entity.Fact{
		ID:         m.ID,
		Text:       m.Fact,
		LikesCount: m.LikesCount,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func ToFactModel(e *entity.Fact) *model.FactModel {
	if e == nil {
		return nil
	}

	return &model.FactModel{
		ID:         e.ID,
		Fact:       e.Text,
		LikesCount: e.LikesCount,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		FactID:    m.FactID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		AuthProvider: m.AuthProvider,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:           e.ID,
		Username:     e.Username,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		AuthProvider: e.AuthProvider,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
