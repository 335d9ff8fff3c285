package entity

import (
	"encoding/json"
	"fmt"
)

// Document is the single persisted aggregate holding every collection.
type Document struct {
	Products []Product `json:"products"`
	Users    []User    `json:"users"`
	Orders   []Order   `json:"orders"`
	Reviews  []Review  `json:"reviews"`
}

// SeedDocument returns the document materialized on first use.
func SeedDocument() *Document {
	return &Document{
		Products: []Product{
			{ID: 1, Name: "PogoJump Neon", Description: "Beginner-friendly with vibrant LED lights", Price: 89, Image: "neon", Featured: true},
			{ID: 2, Name: "PogoJump Pro", Description: "Professional grade with higher bounce", Price: 149, Image: "pro", Featured: true},
			{ID: 3, Name: "PogoJump Junior", Description: "For kids with extra safety features", Price: 69, Image: "junior", Featured: true},
			{ID: 4, Name: "PogoJump Carbon", Description: "Ultra-light carbon fiber design", Price: 199, Image: "carbon", Featured: false},
			{ID: 5, Name: "PogoJump Extreme", Description: "Maximum height with advanced springs", Price: 179, Image: "extreme", Featured: true},
		},
		Users:   []User{},
		Orders:  []Order{},
		Reviews: []Review{},
	}
}

// DecodeDocument parses a persisted document. Collections missing from older
// documents (notably reviews) decode as empty.
func DecodeDocument(b []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	d.normalize()
	return &d, nil
}

// Encode renders the document the way it is persisted.
func (d *Document) Encode() ([]byte, error) {
	d.normalize()
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return b, nil
}

func (d *Document) normalize() {
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Orders == nil {
		d.Orders = []Order{}
	}
	if d.Reviews == nil {
		d.Reviews = []Review{}
	}
}

// UserByEmail matches the stored email exactly (case-sensitive).
func (d *Document) UserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) UserByID(id int64) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

func (d *Document) ProductIndex(id int64) int {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) ReviewIndex(id int64) int {
	for i := range d.Reviews {
		if d.Reviews[i].ID == id {
			return i
		}
	}
	return -1
}

func (d *Document) OrderIndex(id int64) int {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

// ReviewsForProduct returns copies of the reviews that reference productID.
func (d *Document) ReviewsForProduct(productID int64) []Review {
	out := []Review{}
	for _, r := range d.Reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// MaxID returns the largest id used by any entity in the document.
func (d *Document) MaxID() int64 {
	var max int64
	for _, p := range d.Products {
		if p.ID > max {
			max = p.ID
		}
	}
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	for _, o := range d.Orders {
		if o.ID > max {
			max = o.ID
		}
	}
	for _, r := range d.Reviews {
		if r.ID > max {
			max = r.ID
		}
	}
	return max
}
