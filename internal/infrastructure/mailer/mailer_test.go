package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourist-registry-api/config"
)

func TestBuildMessage(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SMTP
		wantFrom string
	}{
		{
			name:     "bare address",
			cfg:      config.SMTP{From: "noreply@example.com"},
			wantFrom: "From: noreply@example.com\r\n",
		},
		{
			name:     "display name",
			cfg:      config.SMTP{From: "noreply@example.com", FromName: "Tourist Registry"},
			wantFrom: "From: Tourist Registry <noreply@example.com>\r\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			msg := buildMessage(tt.cfg, "user@example.com", "Subject line", "<p>hi</p>")

			assert.True(t, strings.HasPrefix(msg, tt.wantFrom))
			assert.Contains(t, msg, "To: user@example.com\r\n")
			assert.Contains(t, msg, "Subject: Subject line\r\n")
			assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")

			// headers and body are separated by a blank line
			headers, body, found := strings.Cut(msg, "\r\n\r\n")
			require.True(t, found)
			assert.NotContains(t, headers, "<p>")
			assert.Equal(t, "<p>hi</p>", body)
		})
	}
}

func TestConfirmationTemplate(t *testing.T) {
	var body strings.Builder
	err := confirmationTmpl.Execute(&body, struct {
		Code string
		TTL  time.Duration
	}{Code: "042317", TTL: 15 * time.Minute})
	require.NoError(t, err)

	assert.Contains(t, body.String(), "042317")
	assert.Contains(t, body.String(), "15m0s")
}
