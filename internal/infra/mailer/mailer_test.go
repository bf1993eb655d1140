package mailer

import (
	"testing"

	"onboarding-app/internal/domain/artists"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionConfirmation(t *testing.T) {
	msg, err := SubmissionConfirmation(artists.Artist{ID: "a-1", FirstName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", msg.To)
	assert.Contains(t, msg.Body, "Hi Ada,")
	assert.Contains(t, msg.Body, "reference a-1")

	raw := string(msg.Encode("noreply@example.com"))
	assert.Contains(t, raw, "From: noreply@example.com\r\n")
	assert.Contains(t, raw, "To: ada@example.com\r\n")
	assert.Contains(t, raw, "\r\n\r\nHi Ada,\r\n")
}

func TestSendSkipsWithoutSMTP(t *testing.T) {
	assert.False(t, Enabled())
	assert.NoError(t, Send(Message{To: "x@example.com"}))
}
