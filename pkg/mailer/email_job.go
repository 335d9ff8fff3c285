package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template and Data, or Subject with Text/HTML, must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome" or "order_placed"
	Data     map[string]any `json:"data,omitempty"`
}

// Message types set on the AMQP publishing.
const (
	TypeWelcome     = "email.welcome"
	TypeOrderPlaced = "email.order_placed"
)
