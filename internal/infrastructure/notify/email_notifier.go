package notify

import (
	"context"

	"github.com/pogojump/pogojump-api/internal/domain/entity"
	"github.com/pogojump/pogojump-api/pkg/mailer"
	tpl "github.com/pogojump/pogojump-api/pkg/mailer/templates"
)

// Publisher is satisfied by *helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, msgType string, body any) error
}

// EmailNotifier turns committed domain events into email jobs on the queue.
type EmailNotifier struct {
	Pub         Publisher
	CompanyName string
	ShopURL     string
}

func NewEmailNotifier(pub Publisher, companyName, shopURL string) *EmailNotifier {
	return &EmailNotifier{Pub: pub, CompanyName: companyName, ShopURL: shopURL}
}

func (n *EmailNotifier) UserRegistered(ctx context.Context, u entity.PublicUser) error {
	data := tpl.NewEmailData(n.CompanyName, n.ShopURL, tpl.WithRecipient(u.Name, u.Email))
	return n.Pub.PublishJSON(ctx, mailer.TypeWelcome, mailer.EmailJob{
		To:       u.Email,
		Template: tpl.Welcome,
		Data:     tpl.ToMap(data),
	})
}

// OrderPlaced skips orders whose purchaser email was not known at checkout.
func (n *EmailNotifier) OrderPlaced(ctx context.Context, o entity.Order) error {
	if o.UserEmail == "" || o.UserEmail == "Unknown" {
		return nil
	}
	data := tpl.NewEmailData(n.CompanyName, n.ShopURL,
		tpl.WithRecipient(o.UserName, o.UserEmail),
		tpl.WithOrder(o.ID, o.Total, len(o.Items), o.Status),
		tpl.WithTime(o.CreatedAt),
	)
	return n.Pub.PublishJSON(ctx, mailer.TypeOrderPlaced, mailer.EmailJob{
		To:       o.UserEmail,
		Template: tpl.OrderPlaced,
		Data:     tpl.ToMap(data),
	})
}
