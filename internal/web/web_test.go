package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandlerServesLandingPage(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(Prefix, Handler())

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "Mergington High School")
	require.Contains(t, rr.Body.String(), `id="signup-form"`)
}

func TestHandlerServesAssets(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle(Prefix, Handler())

	for _, asset := range []string{"/static/app.js", "/static/styles.css"} {
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, asset, nil))
		require.Equal(t, http.StatusOK, rr.Code, asset)
		require.NotZero(t, rr.Body.Len(), asset)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}
