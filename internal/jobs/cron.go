package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// scheduler runs one function on a cron spec with a context that is
// canceled when the scheduler stops.
type scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
}

func newScheduler(logger *slog.Logger) *scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cronLogger := cronLogger{logger: logger}

	return &scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

func (s *scheduler) start(spec string, run func(ctx context.Context)) error {
	if _, err := s.cron.AddFunc(spec, func() { run(s.ctx) }); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// stop ends scheduling, cancels the running function and waits for it.
func (s *scheduler) stop() {
	done := s.cron.Stop()
	s.cancel()
	<-done.Done()
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
