package entities

type Review struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"uniqueIndex:idx_reviews_user_recipe;not null" json:"user_id"`
	RecipeID uint   `gorm:"uniqueIndex:idx_reviews_user_recipe;not null" json:"recipe_id"`
	Comment  string `gorm:"type:text;not null" json:"comment"`
	Tips     string `gorm:"type:text" json:"tips,omitempty"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}
