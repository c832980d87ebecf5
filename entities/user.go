package entities

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Bio          string `gorm:"type:text" json:"bio,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Role         string `gorm:"default:user" json:"role"` // "user" or "admin"
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Timestamp
}
