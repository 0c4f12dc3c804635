package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Candidate is one video proposed inside a recommendation batch. Story is the
// opaque quality token produced by the recommender; ScorePercent is derived
// from it at the storage boundary and never round-trips to JSON.
type Candidate struct {
	VideoID      string  `json:"videoId"`
	Story        string  `json:"story"`
	ScorePercent float64 `json:"-"`
}

// RecommendationBatch is the set of candidates proposed to one user at one
// point in time. The candidate list is persisted as a JSONB payload and
// exposed as ToRecommend once decoded.
type RecommendationBatch struct {
	ID          string         `gorm:"primaryKey" json:"-"`
	UserID      string         `gorm:"column:user_id;index;not null" json:"userId"`
	Payload     datatypes.JSON `gorm:"column:to_recommend;not null" json:"-"`
	ToRecommend []Candidate    `gorm:"-" json:"toRecommend"`
	CreatedAt   time.Time      `json:"-"`
}

func (RecommendationBatch) TableName() string {
	return "recommendation_batches"
}
