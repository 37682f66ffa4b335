package workers

import (
	"chat-relay/domain"
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

const defaultStatsInterval = 30 * time.Second

// ConnectionCounter is satisfied by the presence registry.
type ConnectionCounter interface {
	Count() (users int, connections int)
	OnlineUsers() []domain.UserID
}

// StatsReporterWorker periodically logs how many users and connections are
// live, together with the memory footprint of the process.
type StatsReporterWorker struct {
	log      *slog.Logger
	counter  ConnectionCounter
	interval time.Duration
	self     *process.Process
}

func NewStatsReporterWorker(log *slog.Logger, counter ConnectionCounter, interval time.Duration) *StatsReporterWorker {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Debug("Process metrics unavailable", "error", err)
	}
	return &StatsReporterWorker{log: log, counter: counter, interval: interval, self: self}
}

// Run reports on every tick until ctx is canceled, with a last report on the way out.
func (w *StatsReporterWorker) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			if online := w.counter.OnlineUsers(); len(online) > 0 {
				w.log.Info("Users still online at shutdown", "count", len(online), "user_ids", online)
			}
			w.log.Debug("Stats reporter stopped")
			return nil
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *StatsReporterWorker) report(startTime time.Time) {
	users, connections := w.counter.Count()
	w.log.Info("Presence stats",
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"online_users", users,
		"connections", connections,
		"goroutines", runtime.NumGoroutine(),
		"rss_mb", w.rssMb())
}

func (w *StatsReporterWorker) rssMb() uint64 {
	if w.self == nil {
		return 0
	}
	mem, err := w.self.MemoryInfo()
	if err != nil {
		return 0
	}
	return mem.RSS / 1024 / 1024
}
