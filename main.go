package main

import (
	"log"

	"github.com/RigelNana/arkvideo/config"
	"github.com/RigelNana/arkvideo/database"
	"github.com/RigelNana/arkvideo/handler"
	"github.com/RigelNana/arkvideo/models"
	"github.com/RigelNana/arkvideo/pkg/metrics"
	"github.com/RigelNana/arkvideo/probe"
	"github.com/RigelNana/arkvideo/repository"
	"github.com/RigelNana/arkvideo/router"
	"github.com/RigelNana/arkvideo/service"
	"github.com/RigelNana/arkvideo/storage"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func autoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&models.Video{}); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}
}

func main() {
	// 启动 Prometheus metrics 服务器
	metrics.StartMetricsServer("2112")
	log.Printf("Prometheus metrics server started on :2112")

	cfg := config.LoadConfig()
	logger := logrus.New()

	db := database.InitDB(cfg)
	autoMigrate(db)
	repo := repository.NewVideoRepository(db)

	store, err := storage.NewMinioStore(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to create object store: %v", err)
	}

	prober := probe.NewFFProbe(cfg.Probe.FFProbeBinaryPath)
	publisher := service.NewEventPublisher(cfg.Kafka, logger)
	defer publisher.Close()

	svc := service.NewVideoService(repo, store, prober, publisher, cfg, logger)
	videoHandler := handler.NewVideoHandler(svc)

	r := router.Setup(videoHandler)
	log.Printf("arkvideo listening on %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
