package main

import (
	"context"
	"log"
	"time"

	"github.com/Kariqs/storefront-api/auth"
	"github.com/Kariqs/storefront-api/initializers"
	"github.com/Kariqs/storefront-api/routes"
	"github.com/Kariqs/storefront-api/services"
	"github.com/Kariqs/storefront-api/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := initializers.ConnectToDB(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := initializers.SyncDatabase(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := services.NewUserService(db).EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal(err)
		}
	}

	tokens, err := auth.NewTokenService(cfg.JWTKey, cfg.JWTIssuer)
	if err != nil {
		log.Fatal(err)
	}

	server := gin.Default()
	server.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	var images storage.ImageStore
	switch cfg.StorageDriver {
	case "s3":
		images, err = storage.NewS3Store(ctx, cfg.S3Bucket)
	default:
		images, err = storage.NewLocalStore(cfg.UploadDir)
		server.Static(storage.LocalURLPrefix, cfg.UploadDir)
	}
	if err != nil {
		log.Fatal(err)
	}

	routes.Register(server, routes.Dependencies{DB: db, Tokens: tokens, Images: images})

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			config.AllowAllOrigins = true
			config.AllowCredentials = false
			return config
		}
	}
	config.AllowOrigins = origins
	return config
}
