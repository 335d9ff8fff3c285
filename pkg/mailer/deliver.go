package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/pogojump/pogojump-api/pkg/mailer/templates"
)

// ErrBadJob marks jobs that can never be sent; the worker drops them.
var ErrBadJob = errors.New("bad email job")

// Deliver renders job when it names a template and hands it to s.
func Deliver(ctx context.Context, s Sender, job EmailJob) error {
	if job.To == "" {
		return fmt.Errorf("%w: missing recipient", ErrBadJob)
	}
	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		var err error
		subject, text, html, err = templates.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBadJob, err)
		}
	}
	if subject == "" {
		return fmt.Errorf("%w: missing subject", ErrBadJob)
	}
	return s.Send(ctx, job.To, subject, text, html)
}
