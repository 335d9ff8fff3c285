package entity

import "time"

// Ratings are whole numbers in [MinRating, MaxRating].
const (
	MinRating = 1
	MaxRating = 5
)

// Review belongs to a product and a user.
// UserName is captured at creation and does not follow later renames.
type Review struct {
	ID        int64      `json:"id"`
	ProductID int64      `json:"productId"`
	UserID    int64      `json:"userId"`
	UserName  string     `json:"userName"`
	Rating    int        `json:"rating"`
	Review    string     `json:"review"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
