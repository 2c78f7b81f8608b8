package persistent

import (
	"errors"

	"cat-facts/internal/entity"
	"cat-facts/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FactRepository is the sole authority translating domain operations into
// queries against the postgres store. Uniqueness and active-flag filtering
// live here.
type FactRepository interface {
	Insert(fact *entity.Fact) error
	ListActive() ([]*entity.Fact, error)
	GetByID(id string) (*entity.Fact, error)
	GetRandomActive() (*entity.Fact, error)
	SoftDelete(id string) error
	CreateLike(factID, userID string) error
	DeleteLike(factID, userID string) error
}

type factRepository struct {
	db *gorm.DB
}

func NewFactRepository(db *gorm.DB) FactRepository {
	return &factRepository{db: db}
}

// Insert creates a new fact row. A fact whose text matches an active row
// is rejected with entity.ErrDuplicateFact. Soft-deleted facts do not
// block re-insertion of the same text.
func (r *factRepository) Insert(fact *entity.Fact) error {
	var count int64
	if err := r.db.Model(&model.FactModel{}).
		Where("fact = ? AND is_active = ?", fact.Text, true).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return entity.ErrDuplicateFact
	}

	factModel := ToFactModel(fact)
	factModel.IsActive = true
	if err := r.db.Create(factModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrDuplicateFact
		}
		return err
	}

	*fact = *ToFactEntity(factModel)
	return nil
}

func (r *factRepository) ListActive() ([]*entity.Fact, error) {
	var factModels []model.FactModel
	if err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&factModels).Error; err != nil {
		return nil, err
	}

	facts := make([]*entity.Fact, len(factModels))
	for i := range factModels {
		facts[i] = ToFactEntity(&factModels[i])
	}
	return facts, nil
}

func (r *factRepository) GetByID(id string) (*entity.Fact, error) {
	var factModel model.FactModel
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&factModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrFactNotFound
		}
		return nil, err
	}
	return ToFactEntity(&factModel), nil
}

// GetRandomActive picks one active fact uniformly using the store's
// RANDOM() ordering. If the random ordering fails the first active row is
// returned instead; callers tolerate the fallback being non-uniform.
func (r *factRepository) GetRandomActive() (*entity.Fact, error) {
	var factModel model.FactModel
	err := r.db.Where("is_active = ?", true).
		Order(clause.Expr{SQL: "RANDOM()"}).
		First(&factModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrFactNotFound
		}
		// Fallback for stores without RANDOM()
		err = r.db.Where("is_active = ?", true).First(&factModel).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, entity.ErrFactNotFound
			}
			return nil, err
		}
	}
	return ToFactEntity(&factModel), nil
}

// SoftDelete flips is_active to false. Deleting a fact that is already
// inactive succeeds again: not-found is reported only for ids the store
// has never seen.
func (r *factRepository) SoftDelete(id string) error {
	result := r.db.Model(&model.FactModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return entity.ErrFactNotFound
	}
	return nil
}

// CreateLike records a like and bumps the fact's counter in one
// transaction. An empty userID gets a fresh anonymous token, so
// unauthenticated likes never collide - and never cancel.
func (r *factRepository) CreateLike(factID, userID string) error {
	if userID == "" {
		userID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing model.LikeModel
		err := tx.Where("fact_id = ? AND user_id = ?", factID, userID).First(&existing).Error
		if err == nil {
			// Already liked by this user, nothing to do.
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		likeModel := &model.LikeModel{
			ID:     uuid.New().String(),
			FactID: factID,
			UserID: userID,
		}
		if err := tx.Create(likeModel).Error; err != nil {
			return err
		}

		return tx.Model(&model.FactModel{}).
			Where("id = ?", factID).
			UpdateColumn("likes_count", clause.Expr{SQL: "likes_count + ?", Vars: []interface{}{1}}).Error
	})
}

// DeleteLike removes the (fact, user) like row if one exists and decrements
// the counter. Removing a like that was never recorded is not an error.
func (r *factRepository) DeleteLike(factID, userID string) error {
	if userID == "" {
		userID = uuid.New().String()
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("fact_id = ? AND user_id = ?", factID, userID).
			Delete(&model.LikeModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&model.FactModel{}).
			Where("id = ? AND likes_count > 0", factID).
			UpdateColumn("likes_count", clause.Expr{SQL: "likes_count - ?", Vars: []interface{}{1}}).Error
	})
}
