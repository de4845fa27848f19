package middleware

import (
	"net/http"
	"runtime/debug"

	"blogger/internal/logger"
	"blogger/internal/reqctx"
	"blogger/internal/utils/helpers"

	"go.uber.org/zap"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				fields := []zap.Field{
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				}
				if rid, ok := reqctx.GetRequestID(r.Context()); ok {
					fields = append(fields, zap.String("request_id", rid))
				}
				logger.Log.Error("panic recovered", fields...)

				helpers.JSON(w, http.StatusInternalServerError, helpers.ErrorBody{Error: "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
