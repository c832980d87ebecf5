package entities

type Recipe struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	UserID             uint     `gorm:"index;not null" json:"user_id"`
	Title              string   `gorm:"not null" json:"title"`
	Description        string   `gorm:"type:text;not null" json:"description"`
	Ingredients        []string `gorm:"serializer:json;type:text" json:"ingredients"`
	Instructions       []string `gorm:"serializer:json;type:text" json:"instructions"`
	PrepTime           int      `json:"prep_time"`
	CookTime           int      `json:"cook_time"`
	Servings           int      `json:"servings"`
	Difficulty         string   `gorm:"default:medium" json:"difficulty"` // "easy", "medium", "hard"
	Category           string   `json:"category,omitempty"`
	DietaryPreferences []string `gorm:"serializer:json;type:text" json:"dietary_preferences"`
	ImageURL           string   `json:"image_url,omitempty"`

	// Denormalized aggregate over the ratings table. Only written inside the
	// rating repository's transaction, never by hand.
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	TotalRatings  int64   `gorm:"default:0" json:"total_ratings"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Timestamp
}
