package middleware

import (
	"runtime/debug"
	"sync"

	"shopbot/internal/domain"
	"shopbot/internal/i18n"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// PerUser serializes handler execution per sender so two updates from the
// same user never interleave on a session read-modify-write. Different
// users still run concurrently.
func PerUser() tele.MiddlewareFunc {
	var (
		mu    sync.Mutex
		locks = make(map[int64]*sync.Mutex)
	)

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			mu.Lock()
			lock, ok := locks[sender.ID]
			if !ok {
				lock = &sync.Mutex{}
				locks[sender.ID] = lock
			}
			mu.Unlock()

			lock.Lock()
			defer lock.Unlock()
			return next(c)
		}
	}
}

// Recover catches panics in handlers so one bad update cannot take the
// dispatcher down or leak into other users' processing. The user still
// gets the generic error message; the session language is out of reach
// here, so the fallback locale is used.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in handler",
						zap.Any("panic", r),
						zap.String("stack", string(debug.Stack())),
					)
					if sendErr := c.Send(i18n.Translate(domain.DefaultLanguage, "error_generic")); sendErr != nil {
						logger.Warn("Failed to notify user after panic", zap.Error(sendErr))
					}
				}
			}()
			return next(c)
		}
	}
}

// Logging logs every inbound update with its sender.
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var userID int64
			if c.Sender() != nil {
				userID = c.Sender().ID
			}
			logger.Debug("Update received",
				zap.Int64("user_id", userID),
				zap.String("text", c.Text()),
			)
			return next(c)
		}
	}
}
