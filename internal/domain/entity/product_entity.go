package entity

// Product is a catalog item. Products have no owner; only admins mutate them.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Featured    bool    `json:"featured"`
}

// ProductWithReviews is the aggregate product view.
type ProductWithReviews struct {
	Product
	Reviews     []Review `json:"reviews"`
	AvgRating   float64  `json:"avgRating"`
	ReviewCount int      `json:"reviewCount"`
}
