package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RigelNana/arkvideo/config"
	"github.com/RigelNana/arkvideo/models"
	"github.com/RigelNana/arkvideo/pkg/metrics"
	"github.com/RigelNana/arkvideo/probe"
	"github.com/RigelNana/arkvideo/repository"
	"github.com/RigelNana/arkvideo/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// 视频上传大小默认上限 1 GiB
	MaxVideoSizeBytes = 1 << 30
	// 唯一接受的视频类型
	VideoContentType = "video/mp4"
	// 缩略图上限 10 MiB
	MaxThumbnailSizeBytes = 10 << 20
)

type VideoService interface {
	Create(userID uuid.UUID, title string) (*models.Video, error)
	GetByID(id uuid.UUID) (*models.Video, error)
	GetForOwner(id, userID uuid.UUID) (*models.Video, error)
	ListByUser(userID uuid.UUID, page, pageSize int32) ([]*models.Video, int64, error)
	UploadVideo(ctx context.Context, videoID, userID uuid.UUID, filename, contentType string, data []byte) (*models.Video, error)
	StatVideo(ctx context.Context, videoID uuid.UUID) (*models.Video, int64, error)
	ReadVideo(ctx context.Context, video *models.Video) ([]byte, error)
	ReadVideoRange(ctx context.Context, video *models.Video, start, end int64) ([]byte, error)
	SaveThumbnail(videoID, userID uuid.UUID, data []byte, ext string) (*models.Video, error)
}

type VideoServiceImpl struct {
	repo      repository.VideoRepository
	store     storage.ObjectStore
	prober    probe.Prober
	publisher *EventPublisher
	cfg       *config.Config
	logger    *logrus.Logger
}

func NewVideoService(repo repository.VideoRepository, store storage.ObjectStore, prober probe.Prober, publisher *EventPublisher, cfg *config.Config, logger *logrus.Logger) VideoService {
	return &VideoServiceImpl{
		repo:      repo,
		store:     store,
		prober:    prober,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *VideoServiceImpl) Create(userID uuid.UUID, title string) (*models.Video, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	video := &models.Video{
		UserID: userID,
		Title:  title,
		Status: models.VideoStatusPending,
	}
	if err := s.repo.Create(video); err != nil {
		return nil, fmt.Errorf("%w: failed to create video record: %v", ErrDependency, err)
	}
	return video, nil
}

func (s *VideoServiceImpl) GetByID(id uuid.UUID) (*models.Video, error) {
	video, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapRecordErr(err)
	}
	return video, nil
}

// GetForOwner 加载记录并校验归属，所有修改类操作的前置门槛
func (s *VideoServiceImpl) GetForOwner(id, userID uuid.UUID) (*models.Video, error) {
	video, err := s.repo.GetByID(id)
	if err != nil {
		return nil, mapRecordErr(err)
	}
	if video.UserID != userID {
		return nil, fmt.Errorf("%w: video does not belong to user", ErrForbidden)
	}
	return video, nil
}

func (s *VideoServiceImpl) ListByUser(userID uuid.UUID, page, pageSize int32) ([]*models.Video, int64, error) {
	videos, total, err := s.repo.GetByUserIDWithPagination(userID, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to list videos: %v", ErrDependency, err)
	}
	return videos, total, nil
}

// UploadVideo 视频上传管线。每一步都是硬门槛，任一步失败即中止后续步骤：
// 加载记录 -> 归属校验 -> 大小/类型校验 -> 落盘暂存 -> ffprobe 分类 ->
// 生成对象 key -> 写对象存储 -> 更新元数据记录。
// 暂存文件在所有路径上都会被清理。
func (s *VideoServiceImpl) UploadVideo(ctx context.Context, videoID, userID uuid.UUID, filename, contentType string, data []byte) (*models.Video, error) {
	video, err := s.GetForOwner(videoID, userID)
	if err != nil {
		return nil, err
	}

	limit := s.cfg.Server.MaxUploadBytes
	if limit <= 0 {
		limit = MaxVideoSizeBytes
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: video exceeds %d bytes", ErrTooLarge, limit)
	}
	if contentType != VideoContentType {
		return nil, fmt.Errorf("%w: only %s is accepted, got %q", ErrUnsupportedMedia, VideoContentType, contentType)
	}

	staged, err := stageFile(s.cfg.Server.TempDir, data, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%w: staging failed: %v", ErrDependency, err)
	}
	defer staged.Release()

	// 分类失败视为依赖故障，整个上传中止，不降级为 other
	info, err := s.prober.Probe(ctx, staged.Path())
	if err != nil {
		return nil, fmt.Errorf("%w: probe failed: %v", ErrDependency, err)
	}
	classification := probe.Classify(info.Width, info.Height)

	objectKey, err := generateObjectKey(classification)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDependency, err)
	}

	if err := s.store.Put(ctx, objectKey, data, VideoContentType); err != nil {
		return nil, fmt.Errorf("%w: object store write failed: %v", ErrDependency, err)
	}

	meta, _ := json.Marshal(map[string]int{"width": info.Width, "height": info.Height})
	updates := map[string]interface{}{
		"object_key":        objectKey,
		"minio_bucket":      s.cfg.MinIO.BucketName,
		"classification":    string(classification),
		"size_bytes":        int64(len(data)),
		"original_filename": filename,
		"status":            models.VideoStatusReady,
		"metadata":          datatypes.JSON(meta),
	}
	if err := s.repo.UpdateFields(video.ID, updates); err != nil {
		// 对象已写入但记录没更新：留下孤儿对象，不重试也不隐藏
		s.logger.WithError(err).WithFields(logrus.Fields{
			"video_id":   video.ID,
			"object_key": objectKey,
		}).Warn("metadata update failed after object upload, orphaned object left in store")
		return nil, fmt.Errorf("%w: failed to persist video record: %v", ErrDependency, err)
	}

	video.ObjectKey = objectKey
	video.MinioBucket = s.cfg.MinIO.BucketName
	video.Classification = string(classification)
	video.SizeBytes = int64(len(data))
	video.OriginalFilename = filename
	video.Status = models.VideoStatusReady
	video.Metadata = datatypes.JSON(meta)

	metrics.VideosUploaded.WithLabelValues("arkvideo", string(classification), "success").Inc()
	s.publisher.PublishUploaded(ctx, video)

	s.logger.WithFields(logrus.Fields{
		"video_id":       video.ID,
		"object_key":     objectKey,
		"classification": classification,
		"size_bytes":     len(data),
	}).Info("video uploaded")

	return video, nil
}

// StatVideo 播放路径的前半段：记录存在、已有存储引用、对象仍在，
// 三者缺一即 NotFound。返回记录和对象总大小。
func (s *VideoServiceImpl) StatVideo(ctx context.Context, videoID uuid.UUID) (*models.Video, int64, error) {
	video, err := s.repo.GetByID(videoID)
	if err != nil {
		return nil, 0, mapRecordErr(err)
	}
	if video.ObjectKey == "" {
		return nil, 0, fmt.Errorf("%w: video has not been uploaded", ErrNotFound)
	}
	size, err := s.store.Stat(ctx, video.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, 0, fmt.Errorf("%w: object %s missing from store", ErrNotFound, video.ObjectKey)
		}
		return nil, 0, fmt.Errorf("%w: object stat failed: %v", ErrDependency, err)
	}
	return video, size, nil
}

func (s *VideoServiceImpl) ReadVideo(ctx context.Context, video *models.Video) ([]byte, error) {
	data, err := s.store.Get(ctx, video.ObjectKey)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return data, nil
}

func (s *VideoServiceImpl) ReadVideoRange(ctx context.Context, video *models.Video, start, end int64) ([]byte, error) {
	data, err := s.store.GetRange(ctx, video.ObjectKey, start, end)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return data, nil
}

func (s *VideoServiceImpl) SaveThumbnail(videoID, userID uuid.UUID, data []byte, ext string) (*models.Video, error) {
	video, err := s.GetForOwner(videoID, userID)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > MaxThumbnailSizeBytes {
		return nil, fmt.Errorf("%w: thumbnail exceeds %d bytes", ErrTooLarge, int64(MaxThumbnailSizeBytes))
	}

	if err := os.MkdirAll(s.cfg.Server.ThumbnailDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: failed to create thumbnail directory: %v", ErrDependency, err)
	}
	path := filepath.Join(s.cfg.Server.ThumbnailDir, video.ID.String()+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("%w: failed to write thumbnail: %v", ErrDependency, err)
	}

	if err := s.repo.UpdateFields(video.ID, map[string]interface{}{"thumbnail_path": path}); err != nil {
		return nil, fmt.Errorf("%w: failed to persist thumbnail path: %v", ErrDependency, err)
	}
	video.ThumbnailPath = path
	return video, nil
}

func mapRecordErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: no such video", ErrNotFound)
	}
	return fmt.Errorf("%w: metadata read failed: %v", ErrDependency, err)
}

func mapStoreErr(err error) error {
	if errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("%w: object missing from store", ErrNotFound)
	}
	return fmt.Errorf("%w: object store read failed: %v", ErrDependency, err)
}
