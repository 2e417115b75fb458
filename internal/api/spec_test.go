package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec(t *testing.T) {
	doc, err := LoadSpec(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, doc.Paths.Find("/payment/mollie/checkout"))
	assert.NotNil(t, doc.Paths.Find("/mollie/methods/{code}/shop-visibility"))
}

func TestRegisterDocsRoutes(t *testing.T) {
	mux := http.NewServeMux()
	RegisterDocsRoutes(mux, func() string { return `{"swagger":"2.0"}` })

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "openapi: 3.0.3")

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/docs/swagger.json", nil))
	assert.JSONEq(t, `{"swagger":"2.0"}`, rr.Body.String())
}
