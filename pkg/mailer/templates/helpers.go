package templates

import (
	"strconv"
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithRecipient(name, email string) Option {
	return func(d *EmailData) {
		d.Name = name
		d.Email = email
	}
}

func WithOrder(id int64, total float64, items int, status string) Option {
	return func(d *EmailData) {
		d.OrderID = strconv.FormatInt(id, 10)
		d.Total = strconv.FormatFloat(total, 'f', 2, 64)
		d.ItemCount = items
		d.Status = status
	}
}

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		d.Time = t.UTC().Format("02 January 2006, 15:04 UTC")
	}
}

// NewEmailData builds template data with the shop identity filled in.
func NewEmailData(companyName, shopURL string, opts ...Option) EmailData {
	d := EmailData{CompanyName: companyName, ShopURL: shopURL}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
