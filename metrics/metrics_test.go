package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/locey/BurnWin/verification"
)

func TestObserveAttempt(t *testing.T) {
	m := New()
	m.ObserveAttempt(verification.TaskDiscordJoin, "verified", 120*time.Millisecond)
	m.ObserveAttempt(verification.TaskDiscordJoin, "not_found", 80*time.Millisecond)
	m.ObserveAttempt(verification.TaskDiscordJoin, "verified", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.attempts.WithLabelValues("discord_join", "verified")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.attempts.WithLabelValues("discord_join", "not_found")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "burnwin_verification_duration_seconds"))
}
