package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"
	"text/template"

	"onboarding-app/config"
	"onboarding-app/internal/domain/artists"

	"github.com/rs/zerolog/log"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

var submissionTmpl = template.Must(template.New("submission").Parse(
	`Hi {{.FirstName}},

thank you for applying! We received your onboarding application
(reference {{.ID}}) and our team will review it shortly.

You will hear from us at {{.Email}} once the review is done.
`))

// SubmissionConfirmation builds the mail sent after an artist submits.
func SubmissionConfirmation(a artists.Artist) (Message, error) {
	var body bytes.Buffer
	if err := submissionTmpl.Execute(&body, a); err != nil {
		return Message{}, err
	}
	return Message{
		To:      a.Email,
		Subject: "We received your application",
		Body:    body.String(),
	}, nil
}

// Encode renders the message as an RFC 822 mail.
func (m Message) Encode(from string) []byte {
	var b strings.Builder
	b.WriteString("Subject: " + m.Subject + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + m.To + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(m.Body, "\n", "\r\n"))
	return []byte(b.String())
}

// Enabled reports whether SMTP settings are present.
func Enabled() bool {
	return config.SMTP_HOST != "" && config.SMTP_FROM != ""
}

func Send(m Message) error {
	if !Enabled() {
		log.Debug().Str("to", m.To).Str("subject", m.Subject).Msg("SMTP not configured, mail skipped")
		return nil
	}

	auth := smtp.PlainAuth("", config.SMTP_FROM, config.SMTP_PASSWORD, config.SMTP_HOST)
	addr := config.SMTP_HOST + ":" + config.SMTP_PORT
	if err := smtp.SendMail(addr, auth, config.SMTP_FROM, []string{m.To}, m.Encode(config.SMTP_FROM)); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.To, err)
	}
	return nil
}

// NotifySubmitted sends the confirmation and only logs failures;
// the application is already stored at this point.
func NotifySubmitted(a artists.Artist) {
	msg, err := SubmissionConfirmation(a)
	if err == nil {
		err = Send(msg)
	}
	if err != nil {
		log.Error().Err(err).Str("artist_id", a.ID).Msg("Submission confirmation failed")
	}
}
