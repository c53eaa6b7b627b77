package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikitanikist/saleshub/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, environment.Production, environment.Parse("prod"))
	assert.Equal(t, environment.Production, environment.Parse("production"))
	assert.Equal(t, environment.Staging, environment.Parse("stage"))
	assert.Equal(t, environment.Development, environment.Parse(""))
	assert.Equal(t, environment.Development, environment.Parse("whatever"))
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := environment.WithContext(context.Background(), environment.Staging)
	assert.Equal(t, environment.Staging, environment.FromContext(ctx))
	assert.True(t, environment.IsStaging(ctx))
	assert.False(t, environment.IsProduction(ctx))

	assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var seen environment.Environment
	h := environment.Middleware(environment.Production)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = environment.FromContext(r.Context())
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, environment.Production, seen)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	attr, ok := environment.LoggerExtractor()(environment.WithContext(context.Background(), environment.Production))
	require.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "production", attr.Value.String())

	_, ok = environment.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
