// Package consent gates analytics on the visitor's stored cookie choice
// and the host allow-list. It replaces the ambient globals of the old
// site with an injectable service.
package consent

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"
)

// Status is the persisted consent decision.
type Status string

const (
	StatusUnset    Status = ""
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// CookieName stores the decision client-side, mirroring the old
// localStorage key.
const CookieName = "lt_consent"

const cookieTTL = 180 * 24 * time.Hour

// Sink receives tracked events once the consent and host gates pass.
type Sink interface {
	Record(event string, params map[string]string)
}

// LogSink writes one structured JSON line per event, in the same shape
// as the request logger.
type LogSink struct{}

func (LogSink) Record(event string, params map[string]string) {
	entry := struct {
		Timestamp string            `json:"ts"`
		Level     string            `json:"level"`
		Message   string            `json:"msg"`
		Event     string            `json:"event"`
		Params    map[string]string `json:"params,omitempty"`
	}{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     "info",
		Message:   "track",
		Event:     event,
		Params:    params,
	}
	b, _ := json.Marshal(entry)
	log.Println(string(b))
}

// HostPolicy decides whether analytics may run for a request host. The
// site configuration implements it.
type HostPolicy interface {
	HostAllowed(host string) bool
}

// Service decides whether the banner shows, whether the tag loads and
// whether events are recorded.
type Service struct {
	hosts         HostPolicy
	measurementID string
	sink          Sink
	secureCookies bool
}

// NewService wires the host policy, the GA measurement id and the event
// sink. A nil sink falls back to LogSink.
func NewService(hosts HostPolicy, measurementID string, sink Sink) *Service {
	if sink == nil {
		sink = LogSink{}
	}
	return &Service{
		hosts:         hosts,
		measurementID: strings.TrimSpace(measurementID),
		sink:          sink,
	}
}

// SetSecureCookies marks consent cookies Secure (prod).
func (s *Service) SetSecureCookies(v bool) { s.secureCookies = v }

// HostAllowed reports whether analytics may run for this request's host.
func (s *Service) HostAllowed(r *http.Request) bool {
	return s.hosts != nil && s.hosts.HostAllowed(r.Host)
}

// StatusOf reads the stored decision from the request cookie.
func (s *Service) StatusOf(r *http.Request) Status {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return StatusUnset
	}
	switch c.Value {
	case string(StatusAccepted):
		return StatusAccepted
	case string(StatusRejected):
		return StatusRejected
	}
	return StatusUnset
}

// ShowBanner reports whether the cookie banner should render: only on
// allowed hosts, and only while no decision is stored.
func (s *Service) ShowBanner(r *http.Request) bool {
	return s.HostAllowed(r) && s.StatusOf(r) == StatusUnset
}

// LoadTag reports whether the analytics tag may be emitted for this
// request.
func (s *Service) LoadTag(r *http.Request) bool {
	return s.measurementID != "" && s.HostAllowed(r) && s.StatusOf(r) == StatusAccepted
}

// MeasurementID returns the configured GA4 id.
func (s *Service) MeasurementID() string { return s.measurementID }

// Track records an event when the host is allowed and consent was
// accepted; otherwise it is a no-op.
func (s *Service) Track(r *http.Request, event string, params map[string]string) {
	if event == "" || !s.HostAllowed(r) || s.StatusOf(r) != StatusAccepted {
		return
	}
	s.sink.Record(event, params)
}

// Accept persists an accepted decision.
func (s *Service) Accept(w http.ResponseWriter) { s.write(w, StatusAccepted) }

// Reject persists a rejected decision.
func (s *Service) Reject(w http.ResponseWriter) { s.write(w, StatusRejected) }

func (s *Service) write(w http.ResponseWriter, st Status) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(st),
		Path:     "/",
		HttpOnly: false,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(cookieTTL),
	})
}
