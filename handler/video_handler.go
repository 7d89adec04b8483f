package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/RigelNana/arkvideo/pkg/metrics"
	"github.com/RigelNana/arkvideo/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VideoHandler struct {
	svc service.VideoService
}

func NewVideoHandler(svc service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// CreateVideo 创建视频记录
// POST /api/videos
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	video, err := h.svc.Create(userID, req.Title)
	if err != nil {
		log.Printf("CreateVideo error: %v", err)
		writeServiceError(c, err)
		return
	}

	log.Printf("CreateVideo success: videoID=%s, userID=%s", video.ID, userID)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": video})
}

// ListVideos 获取用户的视频列表
// GET /api/videos?page=1&page_size=10
func (h *VideoHandler) ListVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("page_size", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}
	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 50 {
		pageSize = 50 // 限制最大页面大小
	}

	videos, total, err := h.svc.ListByUser(userID, int32(page), int32(pageSize))
	if err != nil {
		log.Printf("ListVideos error: %v", err)
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"videos":    videos,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		},
	})
}

// GetVideoInfo 获取单条视频记录
// GET /api/videos/:id/info
func (h *VideoHandler) GetVideoInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	video, err := h.svc.GetForOwner(videoID, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": video})
}

// UploadVideo 上传视频文件
// POST /api/videos/:id/upload 表单字段 video
func (h *VideoHandler) UploadVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	// 先校验记录和归属，无权限的请求不读大文件
	if _, err := h.svc.GetForOwner(videoID, userID); err != nil {
		writeServiceError(c, err)
		return
	}

	file, header, err := c.Request.FormFile("video")
	if err != nil {
		log.Printf("UploadVideo get file error: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}
	defer file.Close()

	// 超限请求在暂存前拒绝
	if header.Size > service.MaxVideoSizeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType != service.VideoContentType {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": fmt.Sprintf("only %s is accepted", service.VideoContentType)})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("UploadVideo read file error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	log.Printf("UploadVideo request: videoID=%s, userID=%s, filename=%s, size=%d",
		videoID, userID, header.Filename, header.Size)

	video, err := h.svc.UploadVideo(c.Request.Context(), videoID, userID, header.Filename, contentType, data)
	if err != nil {
		log.Printf("UploadVideo failed: videoID=%s: %v", videoID, err)
		writeServiceError(c, err)
		return
	}

	log.Printf("UploadVideo success: videoID=%s, objectKey=%s", video.ID, video.ObjectKey)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": video})
}

// ServeVideo 视频播放，支持单区间 Range 请求
// GET /api/videos/:id
func (h *VideoHandler) ServeVideo(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	video, size, err := h.svc.StatVideo(c.Request.Context(), videoID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Accept-Ranges", "bytes")

	rangeHeader := c.GetHeader("Range")
	if rangeHeader == "" {
		data, err := h.svc.ReadVideo(c.Request.Context(), video)
		if err != nil {
			writeServiceError(c, err)
			return
		}
		metrics.VideoBytesServed.WithLabelValues("arkvideo", "full").Add(float64(len(data)))
		c.Header("Content-Length", strconv.Itoa(len(data)))
		c.Data(http.StatusOK, service.VideoContentType, data)
		return
	}

	start, end, err := parseRangeHeader(rangeHeader, size)
	if err != nil {
		log.Printf("ServeVideo bad range %q: %v", rangeHeader, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid range"})
		return
	}

	data, err := h.svc.ReadVideoRange(c.Request.Context(), video, start, end)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	metrics.VideoBytesServed.WithLabelValues("arkvideo", "partial").Add(float64(len(data)))
	c.Header("Content-Range", fmt.Sprintf("bytes %d-%d/%d", start, end, size))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusPartialContent, service.VideoContentType, data)
}

// UploadThumbnail 上传缩略图到本地磁盘
// POST /api/videos/:id/thumbnail 表单字段 thumbnail
func (h *VideoHandler) UploadThumbnail(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	file, header, err := c.Request.FormFile("thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "thumbnail file is required"})
		return
	}
	defer file.Close()

	if header.Size > service.MaxThumbnailSizeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
		return
	}

	var ext string
	switch header.Header.Get("Content-Type") {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	default:
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only image/jpeg and image/png are accepted"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("UploadThumbnail read file error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}

	video, err := h.svc.SaveThumbnail(videoID, userID, data, ext)
	if err != nil {
		log.Printf("UploadThumbnail failed: videoID=%s: %v", videoID, err)
		writeServiceError(c, err)
		return
	}

	log.Printf("UploadThumbnail success: videoID=%s, path=%s", video.ID, video.ThumbnailPath)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": video})
}

// ServeThumbnail 从本地磁盘返回缩略图
// GET /api/videos/:id/thumbnail
func (h *VideoHandler) ServeThumbnail(c *gin.Context) {
	videoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid video id"})
		return
	}

	video, err := h.svc.GetByID(videoID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if video.ThumbnailPath == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "thumbnail not found"})
		return
	}
	c.File(video.ThumbnailPath)
}
