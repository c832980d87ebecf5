package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateRecipe = "recipe created successfully"
	MessageSuccessGetRecipes   = "recipes retrieved successfully"
	MessageSuccessGetRecipe    = "recipe retrieved successfully"
	MessageSuccessUpdateRecipe = "recipe updated successfully"
	MessageSuccessDeleteRecipe = "recipe deleted successfully"

	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedGetRecipes   = "failed to fetch recipes"
	MessageFailedGetRecipe    = "failed to fetch recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"

	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrNotRecipeOwner     = errors.New("you are not authorized to modify this recipe")
	ErrInvalidIngredients = errors.New("ingredients must be a JSON array of strings")
	ErrInvalidInstruction = errors.New("instructions must be a JSON array of strings")
	ErrInvalidDifficulty  = errors.New("difficulty must be one of easy, medium, hard")
)

type (
	// CreateRecipeRequest arrives as multipart form data; the list fields are
	// JSON-encoded strings so they survive the form encoding.
	CreateRecipeRequest struct {
		Title              string                `json:"title" form:"title" validate:"required,max=200"`
		Description        string                `json:"description" form:"description" validate:"required"`
		Ingredients        string                `json:"ingredients" form:"ingredients" validate:"required"`
		Instructions       string                `json:"instructions" form:"instructions" validate:"required"`
		PrepTime           int                   `json:"prep_time" form:"prep_time" validate:"required,min=0"`
		CookTime           int                   `json:"cook_time" form:"cook_time" validate:"required,min=0"`
		Servings           int                   `json:"servings" form:"servings" validate:"required,min=1"`
		Difficulty         string                `json:"difficulty" form:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Category           string                `json:"category" form:"category"`
		DietaryPreferences string                `json:"dietary_preferences" form:"dietary_preferences"`
		Image              *multipart.FileHeader `json:"-" form:"-"`
	}

	UpdateRecipeRequest struct {
		Title              string                `json:"title" form:"title" validate:"omitempty,max=200"`
		Description        string                `json:"description" form:"description"`
		Ingredients        string                `json:"ingredients" form:"ingredients"`
		Instructions       string                `json:"instructions" form:"instructions"`
		PrepTime           int                   `json:"prep_time" form:"prep_time" validate:"omitempty,min=0"`
		CookTime           int                   `json:"cook_time" form:"cook_time" validate:"omitempty,min=0"`
		Servings           int                   `json:"servings" form:"servings" validate:"omitempty,min=1"`
		Difficulty         string                `json:"difficulty" form:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Category           string                `json:"category" form:"category"`
		DietaryPreferences string                `json:"dietary_preferences" form:"dietary_preferences"`
		Image              *multipart.FileHeader `json:"-" form:"-"`
	}

	// RecipeQuery enumerates the recognized search filters and sorts for the
	// recipe listing endpoint.
	RecipeQuery struct {
		Search            string
		Category          string
		Difficulty        string
		DietaryPreference string
		MaxPrepTime       int
		SortBy            string // created_at, average_rating, prep_time, title
		Order             string // asc, desc
		Page              int
		Limit             int
	}
)
