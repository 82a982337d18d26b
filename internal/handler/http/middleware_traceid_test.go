package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-food-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct {
	id string
}

func (f fixedIDs) Generate() string { return f.id }

func newTraceHandler(buf *bytes.Buffer, ids idGenerator) *Handler {
	return &Handler{
		traceIDs: ids,
		logger:   &logger.Logger{Logger: zerolog.New(buf)},
	}
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name    string
		inbound string
		want    string
	}{
		{name: "no header mints id", inbound: "", want: "generated-id"},
		{name: "inbound id is reused", inbound: "req-42", want: "req-42"},
		{name: "id with spaces is replaced", inbound: "a b", want: "generated-id"},
		{name: "non-ascii id is replaced", inbound: "трасса", want: "generated-id"},
		{name: "overlong id is replaced", inbound: strings.Repeat("x", maxTraceIDLength+1), want: "generated-id"},
		{name: "id at max length is reused", inbound: strings.Repeat("x", maxTraceIDLength), want: strings.Repeat("x", maxTraceIDLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTraceHandler(&buf, fixedIDs{id: "generated-id"})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/foods", nil)
			if tt.inbound != "" {
				req.Header.Set(traceIDHeader, tt.inbound)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.want, rec.Header().Get(traceIDHeader))
			assert.Contains(t, buf.String(), `"trace_id":"`+tt.want+`"`)
		})
	}
}

func TestWithTraceID_UUIDsByDefault(t *testing.T) {
	h := NewHandler(nil, zeroServerConfig(), logger.Nop())

	seen := make(map[string]struct{})
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			mu.Lock()
			seen[rec.Header().Get(traceIDHeader)] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, 20)
	for id := range seen {
		assert.Len(t, id, 36)
	}
}

func TestWithTraceID_DoesNotMutateOriginalRequest(t *testing.T) {
	var buf bytes.Buffer
	h := newTraceHandler(&buf, fixedIDs{id: "generated-id"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	origCtx := req.Context()

	var innerCtxDiffers bool
	h.withTraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		innerCtxDiffers = r.Context() != origCtx
	})).ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, innerCtxDiffers)
	assert.Equal(t, origCtx, req.Context())
}
