package http

import (
	"net/http"
	"unicode"

	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	// longer inbound ids are replaced rather than truncated
	maxTraceIDLength = 64
)

// withTraceID puts a request-scoped logger tagged with trace_id into the
// context and echoes the id in the response. A well-formed inbound
// X-Trace-ID is reused so a caller can follow one request across services.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

// validTraceID accepts non-empty printable ASCII without spaces.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		if c > unicode.MaxASCII || !unicode.IsPrint(c) || c == ' ' {
			return false
		}
	}
	return true
}
