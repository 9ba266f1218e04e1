package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const RequestIDKey = "requestid"

// RequestID tags every request with a UUID, echoed in X-Request-ID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: RequestIDKey,
	})
}

// RequestLogger logs one line per request after the handler chain has run.
func RequestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// the app ErrorHandler has not written the response yet
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		}
		if id, ok := c.Locals(RequestIDKey).(string); ok {
			fields = append(fields, zap.String("request_id", id))
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
		return err
	}
}
