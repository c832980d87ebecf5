package entities

type Rating struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"uniqueIndex:idx_ratings_user_recipe;not null" json:"user_id"`
	RecipeID uint `gorm:"uniqueIndex:idx_ratings_user_recipe;not null" json:"recipe_id"`
	Rating   int  `gorm:"not null" json:"rating"` // 1..5

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}
