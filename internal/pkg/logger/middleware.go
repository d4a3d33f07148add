package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with latency and status
func EchoMiddleware(l *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("remote_ip", c.RealIP()),
			}
			if requestID := res.Header().Get(echo.HeaderXRequestID); requestID != "" {
				fields = append(fields, String("request_id", requestID))
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case res.Status >= 500:
				l.ErrorF("request completed", fields...)
			case res.Status >= 400:
				l.WarnF("request completed", fields...)
			default:
				l.InfoF("request completed", fields...)
			}

			return nil
		}
	}
}
