package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Video struct {
	Base
	UserID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title            string         `gorm:"not null" json:"title"`
	OriginalFilename string         `json:"original_filename"`
	SizeBytes        int64          `json:"size_bytes"`
	Classification   string         `gorm:"type:varchar(50)" json:"classification"`
	Status           string         `gorm:"type:varchar(50);default:'pending'" json:"status"`
	MinioBucket      string         `json:"minio_bucket"`
	ObjectKey        string         `json:"object_key"` // 上传成功前为空
	ThumbnailPath    string         `json:"thumbnail_path"`
	Metadata         datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
}

func (Video) TableName() string {
	return "videos"
}

// 视频状态常量
const (
	VideoStatusPending   = "pending"
	VideoStatusUploading = "uploading"
	VideoStatusReady     = "ready"
	VideoStatusFailed    = "failed"
)
