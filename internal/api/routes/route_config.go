package routes

import (
	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       *handlers.UserHandler
	RecipeHandler     *handlers.RecipeHandler
	RatingHandler     *handlers.RatingHandler
	ReviewHandler     *handlers.ReviewHandler
	FavoriteHandler   *handlers.FavoriteHandler
	FollowHandler     *handlers.FollowHandler
	CollectionHandler *handlers.CollectionHandler
	AdminHandler      *handlers.AdminHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Profile()
	c.Recipes()
	c.Ratings()
	c.Reviews()
	c.Favorites()
	c.Follows()
	c.Collections()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	users := c.App.Group("/api/users")
	{
		users.Post("/signup", c.UserHandler.SignUp)
		users.Post("/signin", c.UserHandler.SignIn)
		users.Get("/:id/profile", c.UserHandler.GetProfile)
	}
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/profile", c.Middleware.AuthMiddleware(c.JWTService))
	{
		profile.Get("", c.UserHandler.GetMyProfile)
		profile.Patch("", c.UserHandler.UpdateProfile)
		profile.Put("/password", c.UserHandler.ChangePassword)
		profile.Delete("", c.UserHandler.DeleteAccount)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("", c.RecipeHandler.GetRecipes)
		// keep /user/:userId ahead of /:id so it is not captured as an id
		recipes.Get("/user/:userId", c.RecipeHandler.GetUserRecipes)
		recipes.Get("/:id", c.RecipeHandler.GetRecipe)

		auth := c.Middleware.AuthMiddleware(c.JWTService)
		recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
		recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/ratings", c.Middleware.AuthMiddleware(c.JWTService))
	{
		ratings.Post("/:recipeId", c.RatingHandler.RateRecipe)
		ratings.Get("/:recipeId/me", c.RatingHandler.GetMyRating)
		ratings.Delete("/:recipeId", c.RatingHandler.DeleteRating)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/reviews")
	{
		reviews.Get("/recipe/:recipeId", c.ReviewHandler.GetRecipeReviews)
		reviews.Get("/user/:userId", c.ReviewHandler.GetUserReviews)

		auth := c.Middleware.AuthMiddleware(c.JWTService)
		reviews.Post("/recipe/:recipeId", auth, c.ReviewHandler.CreateReview)
		reviews.Put("/:id", auth, c.ReviewHandler.UpdateReview)
		reviews.Delete("/:id", auth, c.ReviewHandler.DeleteReview)
	}
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/favorites", c.Middleware.AuthMiddleware(c.JWTService))
	{
		favorites.Get("", c.FavoriteHandler.GetMyFavorites)
		favorites.Post("/:recipeId", c.FavoriteHandler.AddFavorite)
		favorites.Get("/:recipeId/check", c.FavoriteHandler.CheckFavorite)
		favorites.Delete("/:recipeId", c.FavoriteHandler.RemoveFavorite)
	}
}

func (c *Config) Follows() {
	follows := c.App.Group("/api/follow", c.Middleware.AuthMiddleware(c.JWTService))
	{
		follows.Get("/feed/activity", c.FollowHandler.GetActivityFeed)
		follows.Post("/:userId", c.FollowHandler.Follow)
		follows.Delete("/:userId", c.FollowHandler.Unfollow)
		follows.Get("/:userId/check", c.FollowHandler.CheckFollow)
		follows.Get("/:userId/followers", c.FollowHandler.GetFollowers)
		follows.Get("/:userId/following", c.FollowHandler.GetFollowing)
	}
}

func (c *Config) Collections() {
	collections := c.App.Group("/api/collections")
	{
		collections.Get("/user/:userId", c.CollectionHandler.GetUserCollections)
		collections.Get("/:id", c.CollectionHandler.GetCollection)

		auth := c.Middleware.AuthMiddleware(c.JWTService)
		collections.Get("", auth, c.CollectionHandler.GetMyCollections)
		collections.Post("", auth, c.CollectionHandler.CreateCollection)
		collections.Put("/:id", auth, c.CollectionHandler.UpdateCollection)
		collections.Delete("/:id", auth, c.CollectionHandler.DeleteCollection)
		collections.Post("/:id/recipes/:recipeId", auth, c.CollectionHandler.AddRecipe)
		collections.Delete("/:id/recipes/:recipeId", auth, c.CollectionHandler.RemoveRecipe)
	}
}

func (c *Config) Admin() {
	adminGroup := c.App.Group("/api/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.AdminMiddleware(),
	)
	{
		adminGroup.Get("/users", c.AdminHandler.GetUsers)
		adminGroup.Patch("/users/:userId/status", c.AdminHandler.ToggleUserStatus)
		adminGroup.Patch("/users/:userId/role", c.AdminHandler.MakeAdmin)
		adminGroup.Delete("/users/:userId", c.AdminHandler.DeleteUser)
		adminGroup.Delete("/recipes/:recipeId", c.AdminHandler.DeleteRecipe)
		adminGroup.Delete("/reviews/:reviewId", c.AdminHandler.DeleteReview)
		adminGroup.Get("/statistics", c.AdminHandler.GetStatistics)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
