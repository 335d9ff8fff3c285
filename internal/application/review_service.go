package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
	"github.com/pogojump/pogojump-api/pkg/validation"
)

const anonymousAuthor = "Anonymous"

var msgRatingRange = fmt.Sprintf("Rating must be between %d and %d", entity.MinRating, entity.MaxRating)

func init() {
	validation.RegisterAlias("rating",
		fmt.Sprintf("gte=%d,lte=%d", entity.MinRating, entity.MaxRating),
		fmt.Sprintf("must be between %d and %d", entity.MinRating, entity.MaxRating))
}

// CreateReviewInput lists Review before Rating so a missing field is reported
// ahead of an out-of-range rating.
type CreateReviewInput struct {
	Review string             `json:"review" validate:"required"`
	Rating *validation.Number `json:"rating" validate:"required,rating"`
}

func (in CreateReviewInput) Validate() error {
	err := checkInput(in, func(field, tag string) string {
		if tag == "required" {
			return "Rating and review are required"
		}
		return msgRatingRange
	})
	if err != nil {
		return err
	}
	return wholeRating(in.Rating)
}

type UpdateReviewInput struct {
	Rating *validation.Number `json:"rating" validate:"omitempty,rating"`
	Review *string            `json:"review"`
}

func (in UpdateReviewInput) Validate() error {
	if err := checkInput(in, fixed(msgRatingRange)); err != nil {
		return err
	}
	return wholeRating(in.Rating)
}

func wholeRating(n *validation.Number) error {
	if n != nil && !n.IsInt() {
		return Validation(msgRatingRange, map[string]string{"rating": "must be a whole number"})
	}
	return nil
}

type ReviewService struct {
	Store  *DocumentStore
	IDs    *IDGenerator
	Logger *logrus.Logger
}

func NewReviewService(store *DocumentStore, ids *IDGenerator, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Store: store, IDs: ids, Logger: logger}
}

// ListForProduct does not require the product to exist, so orphaned reviews stay listable.
func (s *ReviewService) ListForProduct(ctx context.Context, productID int64) ([]entity.Review, error) {
	var out []entity.Review
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		out = doc.ReviewsForProduct(productID)
		return nil
	})
	return out, err
}

func (s *ReviewService) Get(ctx context.Context, id int64) (entity.Review, error) {
	var out entity.Review
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		i := doc.ReviewIndex(id)
		if i < 0 {
			return ErrReviewNotFound
		}
		out = doc.Reviews[i]
		return nil
	})
	return out, err
}

func (s *ReviewService) Create(ctx context.Context, caller Identity, productID int64, in CreateReviewInput) (entity.Review, error) {
	if err := in.Validate(); err != nil {
		return entity.Review{}, err
	}
	var out entity.Review
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		if doc.ProductIndex(productID) < 0 {
			return ErrProductNotFound
		}
		name := anonymousAuthor
		if u := doc.UserByID(caller.ID); u != nil && u.Name != "" {
			name = u.Name
		}
		out = entity.Review{
			ID:        s.IDs.Next(doc.MaxID()),
			ProductID: productID,
			UserID:    caller.ID,
			UserName:  name,
			Rating:    int(in.Rating.Float64()),
			Review:    in.Review,
			CreatedAt: time.Now().UTC(),
		}
		doc.Reviews = append(doc.Reviews, out)
		return nil
	})
	return out, err
}

// Update changes rating and text when supplied and always stamps updatedAt.
func (s *ReviewService) Update(ctx context.Context, caller Identity, id int64, in UpdateReviewInput) (entity.Review, error) {
	var out entity.Review
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		i := doc.ReviewIndex(id)
		if i < 0 {
			return ErrReviewNotFound
		}
		r := &doc.Reviews[i]
		if err := RequireOwnerOrAdmin(caller, r.UserID, "You can only edit your own reviews"); err != nil {
			return err
		}
		if err := in.Validate(); err != nil {
			return err
		}
		if in.Rating != nil {
			r.Rating = int(in.Rating.Float64())
		}
		if in.Review != nil {
			r.Review = *in.Review
		}
		now := time.Now().UTC()
		r.UpdatedAt = &now
		out = *r
		return nil
	})
	return out, err
}

func (s *ReviewService) Delete(ctx context.Context, caller Identity, id int64) error {
	return s.Store.Update(ctx, func(doc *entity.Document) error {
		i := doc.ReviewIndex(id)
		if i < 0 {
			return ErrReviewNotFound
		}
		if err := RequireOwnerOrAdmin(caller, doc.Reviews[i].UserID, "You can only delete your own reviews"); err != nil {
			return err
		}
		doc.Reviews = append(doc.Reviews[:i], doc.Reviews[i+1:]...)
		return nil
	})
}
