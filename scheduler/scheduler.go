package scheduler

import (
	"sync"
	"time"

	"mentorexpress/config"
	"mentorexpress/logger"
	"mentorexpress/services"
)

// Watchdog periodically probes the ML service and logs availability
// transitions, so an outage shows up in the logs before the first failed
// matching request does.
type Watchdog struct {
	ml       services.MLService
	interval time.Duration

	mutex     sync.Mutex
	available bool
	lastCheck time.Time
}

func NewWatchdog(cfg *config.Config, ml services.MLService) *Watchdog {
	interval := time.Duration(cfg.Scheduler.HealthCheckIntervalSec) * time.Second
	return &Watchdog{
		ml:       ml,
		interval: interval,
		// Assume available until the first probe says otherwise.
		available: true,
	}
}

// Start launches the probe loop in the background.
func Start(cfg *config.Config, ml services.MLService) *Watchdog {
	w := NewWatchdog(cfg, ml)
	go w.run()
	logger.Info("ML health watchdog started", "interval", w.interval)
	return w
}

func (w *Watchdog) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.check(time.Now())
	for now := range ticker.C {
		w.check(now)
	}
}

func (w *Watchdog) check(now time.Time) {
	up := w.ml.HealthCheck()

	w.mutex.Lock()
	changed := up != w.available
	w.available = up
	w.lastCheck = now
	w.mutex.Unlock()

	if !changed {
		return
	}
	if up {
		logger.Info("ML service recovered")
	} else {
		logger.Warn("ML service is unreachable, matching requests will fail until it recovers")
	}
}

// Available reports the result of the most recent probe.
func (w *Watchdog) Available() bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.available
}
