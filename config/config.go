package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	Probe    ProbeConfig
	Kafka    KafkaConfig
}

type ServerConfig struct {
	Port           string
	JWTSecret      string
	JWTExpireMins  int
	TempDir        string
	ThumbnailDir   string
	MaxUploadBytes int64
}

type DatabaseConfig struct {
	DBUser     string
	DBPassword string
	DBName     string
	DBHost     string
	DBPort     string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
}

type ProbeConfig struct {
	FFProbeBinaryPath string
}

type KafkaConfig struct {
	Brokers string
	Topic   string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			JWTSecret:      os.Getenv("JWT_SECRET"),
			JWTExpireMins:  getEnvInt("JWT_EXPIRE_MINUTES", 60),
			TempDir:        getEnv("UPLOAD_TEMP_DIR", os.TempDir()),
			ThumbnailDir:   getEnv("THUMBNAIL_DIR", "thumbnails"),
			MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 1<<30),
		},
		Database: DatabaseConfig{
			DBUser:     os.Getenv("DB_USER"),
			DBPassword: os.Getenv("DB_PASSWORD"),
			DBName:     os.Getenv("DB_NAME"),
			DBHost:     os.Getenv("DB_HOST"),
			DBPort:     os.Getenv("DB_PORT"),
		},
		MinIO: MinIOConfig{
			Endpoint:        os.Getenv("MINIO_ENDPOINT"),
			AccessKeyID:     os.Getenv("MINIO_ACCESS_KEY"),
			SecretAccessKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:          false,
			BucketName:      getEnv("MINIO_BUCKET_NAME", "videos"),
		},
		Probe: ProbeConfig{
			FFProbeBinaryPath: getEnv("FFPROBE_PATH", "ffprobe"),
		},
		Kafka: KafkaConfig{
			Brokers: os.Getenv("KAFKA_BROKERS"),
			Topic:   getEnv("KAFKA_TOPIC", "video.uploaded"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
