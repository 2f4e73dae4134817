package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	AllowedOrigins []string

	UploadDir     string
	MaxUploadSize int64

	SweepInterval   time.Duration
	CommentMaxDepth int
}

const (
	defaultPort          = "8080"
	defaultDBName        = "fliquecms"
	defaultUploadDir     = "uploads"
	defaultMaxUpload     = 2 << 30 // 2GB
	defaultSweepInterval = time.Minute
	defaultCommentDepth  = 32
)

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	cfg := Config{
		Port:            envOr("PORT", defaultPort),
		MongoURI:        os.Getenv("MONGO_URI"),
		DBName:          envOr("DB_NAME", defaultDBName),
		UploadDir:       envOr("UPLOAD_DIR", defaultUploadDir),
		MaxUploadSize:   envInt64("MAX_UPLOAD_SIZE", defaultMaxUpload),
		SweepInterval:   envDuration("SWEEP_INTERVAL", defaultSweepInterval),
		CommentMaxDepth: int(envInt64("COMMENT_MAX_DEPTH", defaultCommentDepth)),
	}

	origins := []string{"http://localhost:3000"}
	if u := os.Getenv("CLIENT_URL"); u != "" {
		origins = append(origins, u)
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.AllowedOrigins = origins

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("invalid %s=%q, using default", key, v)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using default", key, v)
		return fallback
	}
	return d
}
