package email

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/Domenick1991/flightasset/internal/kafka"
	"github.com/rs/zerolog"
)

const welcomeSubject = "Welcome aboard"

var welcomeTemplate = template.Must(template.New("welcome").Parse(
	`Hi {{if .FirstName}}{{.FirstName}}{{else}}{{.Username}}{{end}},

your account "{{.Username}}" is ready. Log in to start looking up flights.
`))

type Message struct {
	To      string
	Subject string
	Body    string
}

// Transport delivers a rendered message.
type Transport interface {
	Deliver(ctx context.Context, msg Message) error
}

// LogTransport writes messages to the log instead of a mail server.
type LogTransport struct {
	log zerolog.Logger
}

func NewLogTransport(log zerolog.Logger) *LogTransport {
	return &LogTransport{log: log}
}

func (t *LogTransport) Deliver(_ context.Context, msg Message) error {
	t.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg(msg.Body)
	return nil
}

type Sender struct {
	transport Transport
}

func NewSender(transport Transport) *Sender {
	return &Sender{transport: transport}
}

func (s *Sender) SendWelcome(ctx context.Context, event kafka.AccountEvent) error {
	if event.Email == "" {
		return fmt.Errorf("account %q has no email address", event.Username)
	}

	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, event); err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}

	if err := s.transport.Deliver(ctx, Message{To: event.Email, Subject: welcomeSubject, Body: body.String()}); err != nil {
		return fmt.Errorf("deliver welcome email to %s: %w", event.Email, err)
	}
	return nil
}
