package initializers

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Kariqs/storefront-api/utils"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBDriver       string
	DatabaseURL    string
	JWTKey         string
	JWTIssuer      string
	AllowedOrigins []string
	StorageDriver  string
	UploadDir      string
	S3Bucket       string
	AdminEmail     string
	AdminPassword  string
}

// LoadEnv loads a .env file when one is present. Real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}
}

func LoadConfig() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTKey:         os.Getenv("JWT_KEY"),
		JWTIssuer:      os.Getenv("JWT_ISSUER"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
		UploadDir:      getEnv("UPLOAD_DIR", "wwwroot/Images"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTKey == "" {
		return cfg, fmt.Errorf("%w: JWT_KEY is not set", utils.ErrConfiguration)
	}
	if cfg.JWTIssuer == "" {
		return cfg, fmt.Errorf("%w: JWT_ISSUER is not set", utils.ErrConfiguration)
	}
	if cfg.DatabaseURL == "" && cfg.DBDriver != "sqlite" {
		return cfg, fmt.Errorf("%w: DATABASE_URL is not set", utils.ErrConfiguration)
	}
	if cfg.StorageDriver == "s3" && cfg.S3Bucket == "" {
		return cfg, fmt.Errorf("%w: S3_BUCKET is required when STORAGE_DRIVER=s3", utils.ErrConfiguration)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
