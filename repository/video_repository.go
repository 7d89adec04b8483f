package repository

import (
	"github.com/RigelNana/arkvideo/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoRepository interface {
	BaseRepository[models.Video]
	GetByUserIDWithPagination(userID uuid.UUID, page, pageSize int32) ([]*models.Video, int64, error)
	UpdateStatus(id uuid.UUID, status string) error
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	CountByUserID(userID uuid.UUID) (int64, error)
}

type VideoRepositoryImpl struct {
	*BaseRepositoryImpl[models.Video]
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &VideoRepositoryImpl{
		BaseRepositoryImpl: NewBaseRepository[models.Video](db),
	}
}

func (r *VideoRepositoryImpl) GetByUserIDWithPagination(userID uuid.UUID, page, pageSize int32) ([]*models.Video, int64, error) {
	var videos []*models.Video
	var total int64

	offset := (page - 1) * pageSize

	err := r.db.Model(&models.Video{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	err = r.db.Where("user_id = ?", userID).
		Limit(int(pageSize)).
		Offset(int(offset)).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, 0, err
	}

	return videos, total, nil
}

func (r *VideoRepositoryImpl) UpdateStatus(id uuid.UUID, status string) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).Update("status", status).Error
}

func (r *VideoRepositoryImpl) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Video{}).Where("id = ?", id).Updates(updates).Error
}

func (r *VideoRepositoryImpl) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Video{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
