package repository

import (
	"context"
	"errors"

	"blogly/internal/cache"
	"blogly/internal/models"

	"gorm.io/gorm"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Tag, error)
	GetByIDWithPosts(ctx context.Context, id uint) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository returns a new TagRepository implementation.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	key := cache.TagKey(id)

	err := cache.Aside(ctx, key, &tag, cache.TagTTL, func() error {
		if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Tag", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) GetByIDWithPosts(ctx context.Context, id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).
		Preload("Posts").
		Preload("Posts.User").
		First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("A tag with that name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tagRepository) Rename(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		if isUniqueConstraintError(res.Error) {
			return models.NewConflictError("A tag with that name already exists")
		}
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Tag", id)
	}
	cache.InvalidateTag(ctx, id)
	return nil
}

// Delete removes the tag and its join rows in one transaction.
func (r *tagRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Tag", id)
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateTag(ctx, id)
	return nil
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
