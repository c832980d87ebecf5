package entities

import "time"

type Collection struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index;not null" json:"user_id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}

type CollectionRecipe struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CollectionID uint      `gorm:"uniqueIndex:idx_collection_recipes_pair;not null" json:"collection_id"`
	RecipeID     uint      `gorm:"uniqueIndex:idx_collection_recipes_pair;not null" json:"recipe_id"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`

	Collection *Collection `gorm:"foreignKey:CollectionID" json:"collection,omitempty"`
	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}
