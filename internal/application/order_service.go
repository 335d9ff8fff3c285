package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
	"github.com/pogojump/pogojump-api/internal/metrics"
	"github.com/pogojump/pogojump-api/pkg/helpers"
	"github.com/pogojump/pogojump-api/pkg/validation"
)

const unknownPurchaser = "Unknown"

type CreateOrderInput struct {
	Items []json.RawMessage  `json:"items" validate:"required,min=1"`
	Total *validation.Number `json:"total" validate:"required,nonneg"`
}

func (in CreateOrderInput) Validate() error {
	return checkInput(in, func(field, tag string) string {
		if field == "items" {
			return "No items in order"
		}
		return "Total must be a non-negative number"
	})
}

// UpdateOrderInput keeps the stored status when Status is empty.
type UpdateOrderInput struct {
	Status string `json:"status"`
}

type OrderService struct {
	Store    *DocumentStore
	IDs      *IDGenerator
	Notifier Notifier
	Logger   *logrus.Logger
	Metrics  *metrics.Metrics
}

func NewOrderService(store *DocumentStore, ids *IDGenerator, n Notifier, logger *logrus.Logger, m *metrics.Metrics) *OrderService {
	if n == nil {
		n = NoopNotifier{}
	}
	return &OrderService{Store: store, IDs: ids, Notifier: n, Logger: logger, Metrics: m}
}

func (s *OrderService) Create(ctx context.Context, caller Identity, in CreateOrderInput) (entity.Order, error) {
	if err := in.Validate(); err != nil {
		return entity.Order{}, err
	}
	var out entity.Order
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		name, email := unknownPurchaser, unknownPurchaser
		if u := doc.UserByID(caller.ID); u != nil {
			if u.Name != "" {
				name = u.Name
			}
			if u.Email != "" {
				email = u.Email
			}
		}
		out = entity.Order{
			ID:        s.IDs.Next(doc.MaxID()),
			UserID:    caller.ID,
			UserName:  name,
			UserEmail: email,
			Items:     in.Items,
			Total:     in.Total.Float64(),
			Status:    entity.OrderStatusPending,
			CreatedAt: time.Now().UTC(),
		}
		doc.Orders = append(doc.Orders, out)
		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	s.Metrics.Event("order_created")
	if err := s.Notifier.OrderPlaced(ctx, out); err != nil {
		helpers.LogError(s.Logger, "order notification failed", err, logrus.Fields{"order_id": out.ID})
	}
	return out, nil
}

// ListMine returns the caller's orders in stored order.
func (s *OrderService) ListMine(ctx context.Context, caller Identity) ([]entity.Order, error) {
	out := []entity.Order{}
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		for _, o := range doc.Orders {
			if o.UserID == caller.ID {
				out = append(out, o)
			}
		}
		return nil
	})
	return out, err
}

func (s *OrderService) ListAll(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	err := s.Store.View(ctx, func(doc *entity.Document) error {
		out = doc.Orders
		return nil
	})
	return out, err
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, in UpdateOrderInput) (entity.Order, error) {
	var out entity.Order
	err := s.Store.Update(ctx, func(doc *entity.Document) error {
		i := doc.OrderIndex(id)
		if i < 0 {
			return ErrOrderNotFound
		}
		if in.Status != "" {
			doc.Orders[i].Status = in.Status
		}
		out = doc.Orders[i]
		return nil
	})
	return out, err
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.Store.Update(ctx, func(doc *entity.Document) error {
		i := doc.OrderIndex(id)
		if i < 0 {
			return ErrOrderNotFound
		}
		doc.Orders = append(doc.Orders[:i], doc.Orders[i+1:]...)
		return nil
	})
}
