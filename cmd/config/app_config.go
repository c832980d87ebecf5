package config

import (
	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/api/routes"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/admin"
	"RecipeShare-Backend/pkg/collection"
	"RecipeShare-Backend/pkg/favorite"
	"RecipeShare-Backend/pkg/follow"
	"RecipeShare-Backend/pkg/jwt"
	"RecipeShare-Backend/pkg/rating"
	"RecipeShare-Backend/pkg/recipe"
	"RecipeShare-Backend/pkg/review"
	"RecipeShare-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ratingRepository := rating.NewRatingRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	favoriteRepository := favorite.NewFavoriteRepository(db)
	followRepository := follow.NewFollowRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	ratingService := rating.NewRatingService(ratingRepository)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)
	favoriteService := favorite.NewFavoriteService(favoriteRepository, recipeRepository)
	followService := follow.NewFollowService(followRepository, userRepository)
	collectionService := collection.NewCollectionService(collectionRepository, recipeRepository)
	adminService := admin.NewAdminService(adminRepository, userRepository, recipeRepository, reviewRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)
	ratingHandler := handlers.NewRatingHandler(ratingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	followHandler := handlers.NewFollowHandler(followService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	adminHandler := handlers.NewAdminHandler(adminService)

	middlewares := middleware.NewMiddleware(userRepository)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		RatingHandler:     ratingHandler,
		ReviewHandler:     reviewHandler,
		FavoriteHandler:   favoriteHandler,
		FollowHandler:     followHandler,
		CollectionHandler: collectionHandler,
		AdminHandler:      adminHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
