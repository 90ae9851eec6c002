package middleware

import (
	"context"
	"net/http"
	"time"

	"student-pet-records/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const requestLogKey ctxKey = "request_log"

// requestLog junta lo que se conoce recién más adentro de la cadena
// (ej. el login, que resuelve AuthContext).
type requestLog struct {
	login string
}

// noteLogin deja el login para la línea de log; sin RequestLogger no hace nada.
func noteLogin(ctx context.Context, login string) {
	if rl, ok := ctx.Value(requestLogKey).(*requestLog); ok {
		rl.login = login
	}
}

// RequestLogger escribe una línea por request con el request id de chi.
// Va después de chimw.RequestID y antes de AuthContext.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	log = logger.OrNop(log)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			rl := &requestLog{}
			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), requestLogKey, rl)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"request_id":  chimw.GetReqID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if rl.login != "" {
				fields["login"] = rl.login
			}

			switch {
			case status >= 500:
				log.Error("http.request", fields)
			case status >= 400:
				log.Warn("http.request", fields)
			default:
				log.Info("http.request", fields)
			}
		})
	}
}
