package consent

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"localtop.it/web/internal/config"
)

type recordingSink struct {
	events []string
	params []map[string]string
}

func (s *recordingSink) Record(event string, params map[string]string) {
	s.events = append(s.events, event)
	s.params = append(s.params, params)
}

func newTestService(sink Sink) *Service {
	hosts := config.Site{AllowedHosts: []string{"localtop.it", "www.localtop.it"}}
	return NewService(hosts, "G-TEST123", sink)
}

func reqWithConsent(host string, st Status) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Host = host
	if st != StatusUnset {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: string(st)})
	}
	return r
}

func TestHostAllowedIgnoresPortAndCase(t *testing.T) {
	t.Parallel()

	s := newTestService(nil)
	require.True(t, s.HostAllowed(reqWithConsent("localtop.it", StatusUnset)))
	require.True(t, s.HostAllowed(reqWithConsent("WWW.LOCALTOP.IT:443", StatusUnset)))
	require.False(t, s.HostAllowed(reqWithConsent("localhost:8080", StatusUnset)))
}

func TestShowBannerOnlyOnAllowedHostsWithoutDecision(t *testing.T) {
	t.Parallel()

	s := newTestService(nil)
	require.True(t, s.ShowBanner(reqWithConsent("localtop.it", StatusUnset)))
	require.False(t, s.ShowBanner(reqWithConsent("localtop.it", StatusAccepted)))
	require.False(t, s.ShowBanner(reqWithConsent("localtop.it", StatusRejected)))
	require.False(t, s.ShowBanner(reqWithConsent("evil.example", StatusUnset)))
}

func TestLoadTagNeedsConsentHostAndMeasurementID(t *testing.T) {
	t.Parallel()

	s := newTestService(nil)
	require.True(t, s.LoadTag(reqWithConsent("localtop.it", StatusAccepted)))
	require.False(t, s.LoadTag(reqWithConsent("localtop.it", StatusUnset)))
	require.False(t, s.LoadTag(reqWithConsent("localtop.it", StatusRejected)))
	require.False(t, s.LoadTag(reqWithConsent("localhost", StatusAccepted)))

	noID := NewService(config.Site{AllowedHosts: []string{"localtop.it"}}, "", nil)
	require.False(t, noID.LoadTag(reqWithConsent("localtop.it", StatusAccepted)))
}

func TestTrackIsGated(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	s := newTestService(sink)

	s.Track(reqWithConsent("localtop.it", StatusAccepted), "view_demo", map[string]string{"plan": "PREMIUM"})
	s.Track(reqWithConsent("localtop.it", StatusRejected), "view_demo", nil)
	s.Track(reqWithConsent("localhost", StatusAccepted), "view_demo", nil)
	s.Track(reqWithConsent("localtop.it", StatusAccepted), "", nil)

	require.Equal(t, []string{"view_demo"}, sink.events)
	require.Equal(t, "PREMIUM", sink.params[0]["plan"])
}

func TestAcceptAndRejectPersistTheDecision(t *testing.T) {
	t.Parallel()

	s := newTestService(nil)

	w := httptest.NewRecorder()
	s.Accept(w)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.Equal(t, string(StatusAccepted), cookies[0].Value)

	w = httptest.NewRecorder()
	s.Reject(w)
	require.Equal(t, string(StatusRejected), w.Result().Cookies()[0].Value)
}

func TestStatusOfIgnoresGarbageValues(t *testing.T) {
	t.Parallel()

	s := newTestService(nil)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "banana"})
	require.Equal(t, StatusUnset, s.StatusOf(r))
}
