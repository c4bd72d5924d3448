package goroutine

import (
	"context"
	"runtime/debug"

	"github.com/aliiaycicek/My-Portfolio/internal/logger"
)

// Logger интерфейс для логирования ошибок. *logrus.Logger ему удовлетворяет.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler обрабатывает panic в горутинах
type RecoveryHandler struct {
	logger Logger
}

// NewRecoveryHandler создает новый обработчик
func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	return &RecoveryHandler{logger: logger}
}

// SafeGo запускает горутину с обработкой panic
func (rh *RecoveryHandler) SafeGo(name string, fn func()) {
	go func() {
		defer rh.handlePanic(name)
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic
func (rh *RecoveryHandler) SafeGoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	go func() {
		defer rh.handlePanic(name)
		fn(ctx)
	}()
}

func (rh *RecoveryHandler) handlePanic(name string) {
	if r := recover(); r != nil {
		rh.logger.Errorf("panic в горутине %s: %v\nStack trace:\n%s", name, r, debug.Stack())
	}
}

// SafeGo запускает горутину, panic пишется в логгер приложения.
func SafeGo(name string, fn func()) {
	NewRecoveryHandler(logger.L()).SafeGo(name, fn)
}

// SafeGoWithContext - то же, что SafeGo, с контекстом.
func SafeGoWithContext(ctx context.Context, name string, fn func(context.Context)) {
	NewRecoveryHandler(logger.L()).SafeGoWithContext(ctx, name, fn)
}
