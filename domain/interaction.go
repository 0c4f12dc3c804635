package domain

import "time"

// WhileWatching holds the action flags for things the user did during the
// viewing session itself, as opposed to at any later point. A during-viewing
// flag is only meaningful when the matching overall flag on the record is set.
type WhileWatching struct {
	HasLiked      bool `gorm:"column:ww_has_liked" json:"hasLiked"`
	HasDisliked   bool `gorm:"column:ww_has_disliked" json:"hasDisliked"`
	HasSubscribed bool `gorm:"column:ww_has_subscribed" json:"hasSubscribed"`
}

// InteractionRecord is one watched video reported by the extension for one user.
type InteractionRecord struct {
	ID               uint          `gorm:"primaryKey" json:"-"`
	UserID           string        `gorm:"column:user_id;index;not null" json:"-"`
	VideoID          string        `gorm:"column:video_id;not null" json:"videoId"`
	WatchTimeSeconds float64       `gorm:"column:watch_time_seconds;not null" json:"watchTime"`
	DurationSeconds  *float64      `gorm:"column:duration_seconds" json:"duration"`
	WasRecommended   bool          `gorm:"column:was_recommended" json:"wasRecommended"`
	HasLiked         bool          `gorm:"column:has_liked" json:"hasLiked"`
	HasDisliked      bool          `gorm:"column:has_disliked" json:"hasDisliked"`
	HasSubscribed    bool          `gorm:"column:has_subscribed" json:"hasSubscribed"`
	WhileWatching    WhileWatching `gorm:"embedded" json:"whileWatching"`
	CreatedAt        time.Time     `json:"-"`
}

func (InteractionRecord) TableName() string {
	return "interactions"
}
