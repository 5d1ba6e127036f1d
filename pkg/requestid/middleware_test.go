package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	serve := func(header string) (ctxID, respID string) {
		h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = requestid.FromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(requestid.Header, header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return ctxID, rec.Header().Get(requestid.Header)
	}

	t.Run("reuses upstream ids", func(t *testing.T) {
		t.Parallel()
		for _, id := range []string{
			uuid.NewString(),
			"01ARZ3NDEKTSV4RRFFQ69G5FAV",
			"4bf92f3577b34da6a3ce929d0e0e4736",
			"test-request-id-123",
			"trace_id-42",
			strings.Repeat("a", 128),
		} {
			ctxID, respID := serve(id)
			assert.Equal(t, id, ctxID)
			assert.Equal(t, id, respID)
		}
	})

	t.Run("generates when missing or invalid", func(t *testing.T) {
		t.Parallel()
		for _, header := range []string{
			"",
			"test@request#id",
			"test request id",
			"test/request/id",
			"{6f1c1b3e-0a57-4a0e-8d3c-3f0d9c1f2a7b}",
			strings.Repeat("a", 129),
		} {
			ctxID, respID := serve(header)
			require.NotEmpty(t, ctxID, header)
			assert.NotEqual(t, header, ctxID)
			assert.Equal(t, ctxID, respID)

			parsed, err := uuid.Parse(ctxID)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(4), parsed.Version())
		}
	})
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	ctx := requestid.WithContext(context.Background(), "abc")
	assert.Equal(t, "abc", requestid.FromContext(ctx))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
