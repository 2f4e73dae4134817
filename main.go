package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"fliquecms/database"
	"fliquecms/internal/config"
	"fliquecms/internal/repository"
	"fliquecms/internal/routes"
	"fliquecms/internal/storage"
	"fliquecms/services"
)

func main() {
	cfg := config.Load()

	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()
	db := client.Database(cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("ensure indexes: %v", err)
	}
	cancel()

	categoryRepo := repository.NewCategoryRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	topicRepo := repository.NewTopicRepository(db)
	tagRepo := repository.NewTagRepository(db)
	authorRepo := repository.NewAuthorRepository(db)
	adRepo := repository.NewAdRepository(db)
	placementRepo := repository.NewPlacementRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	storyRepo := repository.NewWebStoryRepository(db)
	storyCategoryRepo := repository.NewWebStoryCategoryRepository(db)

	categoryService := services.NewCategoryService(categoryRepo)
	postService := services.NewPostService(postRepo, categoryRepo, topicRepo)
	commentService := services.NewCommentService(commentRepo, cfg.CommentMaxDepth)
	mediaService := services.NewMediaService(mediaRepo, storage.NewDisk(cfg.UploadDir), cfg.MaxUploadSize)
	webStoryService := services.NewWebStoryService(storyRepo, storyCategoryRepo)

	scheduler, err := services.NewSchedulerService(postService, cfg.SweepInterval)
	if err != nil {
		log.Fatalf("scheduler setup: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("scheduler stop: %v", err)
		}
	}()

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadSize),
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Static("/uploads", cfg.UploadDir)

	routes.Register(app, routes.Deps{
		Categories: categoryService,
		Posts:      postService,
		Comments:   commentService,
		Media:      mediaService,
		WebStories: webStoryService,

		TopicRepo:     topicRepo,
		CategoryRepo:  categoryRepo,
		TagRepo:       tagRepo,
		AuthorRepo:    authorRepo,
		AdRepo:        adRepo,
		PlacementRepo: placementRepo,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
