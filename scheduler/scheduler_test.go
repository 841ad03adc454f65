package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mentorexpress/config"
	"mentorexpress/models"
	"mentorexpress/services"
)

type stubML struct {
	up bool
}

func (s *stubML) Classify(string) (*models.ClassificationVerdict, error) { return nil, nil }

func (s *stubML) RankMentors(services.StudentProfile, []services.MentorProfile, int) ([]services.RankedMentor, error) {
	return nil, nil
}

func (s *stubML) HealthCheck() bool { return s.up }

func TestWatchdogTracksAvailability(t *testing.T) {
	cfg := &config.Config{}
	cfg.Scheduler.HealthCheckIntervalSec = 1

	ml := &stubML{up: true}
	w := NewWatchdog(cfg, ml)

	w.check(time.Now())
	assert.True(t, w.Available())

	ml.up = false
	w.check(time.Now())
	assert.False(t, w.Available())

	ml.up = true
	w.check(time.Now())
	assert.True(t, w.Available())
}
