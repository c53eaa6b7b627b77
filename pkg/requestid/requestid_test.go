package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/requestid"
)

func serve(t *testing.T, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var fromCtx string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return fromCtx, rec
}

func TestMiddlewareGeneratesID(t *testing.T) {
	t.Parallel()

	id, rec := serve(t, "")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, rec.Header().Get(requestid.Header))
}

func TestMiddlewareKeepsValidClientID(t *testing.T) {
	t.Parallel()

	id, rec := serve(t, "client-id_42")
	assert.Equal(t, "client-id_42", id)
	assert.Equal(t, "client-id_42", rec.Header().Get(requestid.Header))
}

func TestMiddlewareReplacesInvalidClientID(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"has spaces", "emojié", strings.Repeat("x", 200)} {
		id, _ := serve(t, bad)
		assert.NotEqual(t, bad, id)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	var attrKey, attrVal string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attr, ok := requestid.LoggerExtractor()(r.Context())
		require.True(t, ok)
		attrKey, attrVal = attr.Key, attr.Value.String()
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "request_id", attrKey)
	assert.NotEmpty(t, attrVal)
}
