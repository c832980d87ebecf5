package entities

import "time"

// Follow is the directed edge of the follow graph: follower -> following.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"uniqueIndex:idx_follows_pair;not null" json:"follower_id"`
	FollowingID uint      `gorm:"uniqueIndex:idx_follows_pair;not null" json:"following_id"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`

	Follower  *User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following *User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}
