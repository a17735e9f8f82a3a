package logger

import (
	"log/slog"
	"time"

	domain "accounts/backend/internal/domain/auth"
)

// DurationObserver receives the same elapsed-time observations as the log
// sink, typically backed by prometheus histograms.
type DurationObserver interface {
	ObserveUseCaseDuration(useCase string, elapsed time.Duration)
	ObserveControllerDuration(controller string, elapsed time.Duration)
}

// Logger emits structured timing and error records. Emission never fails
// the caller.
type Logger struct {
	log      *slog.Logger
	observer DurationObserver
}

// New constructs a logger; observer may be nil.
func New(log *slog.Logger, observer DurationObserver) *Logger {
	return &Logger{log: log, observer: observer}
}

var (
	_ domain.PerformanceLogger = (*Logger)(nil)
	_ domain.ErrorLogger       = (*Logger)(nil)
)

// SendLogTimeUseCase records how long a use-case execution took.
func (l *Logger) SendLogTimeUseCase(useCase string, elapsed time.Duration) {
	l.log.Info("use case executed",
		slog.String("use_case", useCase),
		slog.Duration("elapsed", elapsed),
	)
	if l.observer != nil {
		l.observer.ObserveUseCaseDuration(useCase, elapsed)
	}
}

// SendLogTimeController records how long a controller took.
func (l *Logger) SendLogTimeController(controller string, elapsed time.Duration) {
	l.log.Info("controller executed",
		slog.String("controller", controller),
		slog.Duration("elapsed", elapsed),
	)
	if l.observer != nil {
		l.observer.ObserveControllerDuration(controller, elapsed)
	}
}

// SendLogError records a collaborator failure with its underlying cause.
func (l *Logger) SendLogError(message string, err error) {
	l.log.Error(message, slog.Any("error", err))
}
