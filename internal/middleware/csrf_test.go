package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func csrfChain() http.Handler {
	return Session(CSRF(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})))
}

// fetchCSRF performs a GET and returns the cookies plus the token value.
func fetchCSRF(t *testing.T, h http.Handler) ([]*http.Cookie, string) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	cookies := w.Result().Cookies()
	for _, c := range cookies {
		if c.Name == csrfCookieName {
			return cookies, c.Value
		}
	}
	t.Fatal("no csrf cookie issued")
	return nil, ""
}

func TestCSRFAllowsSafeMethods(t *testing.T) {
	h := csrfChain()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFRejectsPostWithoutToken(t *testing.T) {
	h := csrfChain()
	cookies, _ := fetchCSRF(t, h)

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFAcceptsMatchingFormToken(t *testing.T) {
	h := csrfChain()
	cookies, token := fetchCSRF(t, h)

	form := url.Values{"csrf_token": {token}}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	h := csrfChain()
	cookies, token := fetchCSRF(t, h)

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("X-CSRF-Token", token)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFRejectsForeignToken(t *testing.T) {
	h := csrfChain()
	cookies, _ := fetchCSRF(t, h)

	r := httptest.NewRequest(http.MethodPost, "/", nil)
	r.Header.Set("X-CSRF-Token", "deadbeefdeadbeefdeadbeefdeadbeef")
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, http.StatusForbidden, w.Code)
}
