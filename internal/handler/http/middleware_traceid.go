package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader names the request and response header carrying the request
// correlation id. Inbound values are reused as-is so an upstream gateway can
// stitch together multi-hop traces.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a correlation id and attaches a child
// logger carrying it as the "trace_id" field, so all log entries written while
// serving the request can be grouped. The id is echoed back in the response
// header; when the client did not send one, a fresh uuid is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
