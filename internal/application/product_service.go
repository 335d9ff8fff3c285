package application

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
	"github.com/pogojump/pogojump-api/pkg/validation"
)

const defaultProductImage = "default"

type CreateProductInput struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Price       *validation.Number `json:"price" validate:"required,nonneg"`
	Image       string             `json:"image"`
	Featured    bool               `json:"featured"`
}

func (in CreateProductInput) Validate() error {
	return checkInput(in, func(field, tag string) string {
		if tag == "required" {
			return "Name and price required"
		}
		return "Price must be a non-negative number"
	})
}

// UpdateProductInput only changes fields present in the request. Empty name
// and image keep their stored values.
type UpdateProductInput struct {
	Name        validation.Optional[string]            `json:"name"`
	Description validation.Optional[string]            `json:"description"`
	Price       validation.Optional[validation.Number] `json:"price"`
	Image       validation.Optional[string]            `json:"image"`
	Featured    validation.Optional[bool]              `json:"featured"`
}

func (in UpdateProductInput) Validate() error {
	if in.Price.Present && !in.Price.Null && in.Price.Value < 0 {
		return Validation("Price must be a non-negative number", map[string]string{"price": "must not be negative"})
	}
	return nil
}

func (in UpdateProductInput) apply(p *entity.Product) {
	if in.Name.Present && in.Name.Value != "" {
		p.Name = in.Name.Value
	}
	if in.Description.Present {
		p.Description = in.Description.Value
	}
	if in.Price.Present && !in.Price.Null {
		p.Price = in.Price.Value.Float64()
	}
	if in.Image.Present && in.Image.Value != "" {
		p.Image = in.Image.Value
	}
	if in.Featured.Present && !in.Featured.Null {
		p.Featured = in.Featured.Value
	}
}

type ProductService struct {
	Store  *DocumentStore
	IDs    *IDGenerator
	Logger *logrus.Logger
}

func NewProductService(store *DocumentStore, ids *IDGenerator, logger *logrus.Logger) *ProductService {
	return &ProductService{Store: store, IDs: ids, Logger: logger}
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		out = doc.Products
		return nil
	})
	return out, err
}

func (s *ProductService) Get(ctx context.Context, id int64) (entity.Product, error) {
	var out entity.Product
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		i := doc.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		out = doc.Products[i]
		return nil
	})
	return out, err
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (entity.Product, error) {
	if err := in.Validate(); err != nil {
		return entity.Product{}, err
	}
	p := entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price.Float64(),
		Image:       in.Image,
		Featured:    in.Featured,
	}
	if p.Image == "" {
		p.Image = defaultProductImage
	}
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		p.ID = s.IDs.Next(doc.MaxID())
		doc.Products = append(doc.Products, p)
		return nil
	})
	if err != nil {
		return entity.Product{}, err
	}
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in UpdateProductInput) (entity.Product, error) {
	if err := in.Validate(); err != nil {
		return entity.Product{}, err
	}
	var out entity.Product
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		i := doc.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		in.apply(&doc.Products[i])
		out = doc.Products[i]
		return nil
	})
	return out, err
}

// Delete removes the product only. Its reviews and any orders naming it stay.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.Store.Update(ctx, func(doc *entity.Document) error {
		i := doc.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
		return nil
	})
}

// WithReviews returns the product, its reviews and the mean rating rounded to one decimal.
func (s *ProductService) WithReviews(ctx context.Context, id int64) (entity.ProductWithReviews, error) {
	var out entity.ProductWithReviews
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		i := doc.ProductIndex(id)
		if i < 0 {
			return ErrProductNotFound
		}
		reviews := doc.ReviewsForProduct(id)
		out = entity.ProductWithReviews{
			Product:     doc.Products[i],
			Reviews:     reviews,
			AvgRating:   AverageRating(reviews),
			ReviewCount: len(reviews),
		}
		return nil
	})
	return out, err
}

// AverageRating is the arithmetic mean rounded to one decimal, 0 for no reviews.
func AverageRating(reviews []entity.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}
