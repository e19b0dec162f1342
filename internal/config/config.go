package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Site holds process-wide configuration resolved once at startup.
// Values come from the YAML file first, then LOCALTOP_* environment
// variables override individual fields.
type Site struct {
	Addr         string   `yaml:"addr"`
	BaseURL      string   `yaml:"base_url"`
	AllowedHosts []string `yaml:"allowed_hosts"`

	// GA4 measurement id surfaced to the base layout when consent allows it.
	GAMeasurementID string `yaml:"ga_measurement_id"`

	// Demo feed source: an http(s) URL or a local file path.
	FeedURL string `yaml:"feed_url"`

	// Lead endpoint the onboarding/billing forms POST to.
	LeadEndpoint string `yaml:"lead_endpoint"`

	// Catalog defaults. PerPage may still be overridden by the feed itself.
	PerPage          int    `yaml:"per_page"`
	FilterPolicy     string `yaml:"filter_policy"` // both | query-clears-category | category-clears-query
	HideMoreFiltered bool   `yaml:"hide_more_when_filtered"`

	// Fixed CTA target on every demo card.
	ActivateURL string `yaml:"activate_url"`

	TemplatesDir string `yaml:"templates_dir"`
	PublicDir    string `yaml:"public_dir"`
	ContentDir   string `yaml:"content_dir"`
	LocalesDir   string `yaml:"locales_dir"`
}

// Defaults mirrors the production site setup so the binary runs without a file.
func Defaults() Site {
	return Site{
		Addr:         ":8080",
		BaseURL:      "https://localtop.it",
		AllowedHosts: []string{"localtop.it", "www.localtop.it"},
		FeedURL:      "data/demos.json",
		LeadEndpoint: "",
		PerPage:      12,
		FilterPolicy: "both",
		ActivateURL:  "https://localtop.it/checkout",
		TemplatesDir: "templates",
		PublicDir:    "public",
		ContentDir:   "content",
		LocalesDir:   "locales",
	}
}

// Load reads the YAML file at path (optional) and applies env overrides.
func Load(path string) (Site, error) {
	s := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Site{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &s); err != nil {
			return Site{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	s.applyEnv()
	if err := s.validate(); err != nil {
		return Site{}, err
	}
	return s, nil
}

func (s *Site) applyEnv() {
	if v := os.Getenv("LOCALTOP_ADDR"); v != "" {
		s.Addr = v
	}
	if v := os.Getenv("LOCALTOP_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("LOCALTOP_ALLOWED_HOSTS"); v != "" {
		hosts := strings.Split(v, ",")
		s.AllowedHosts = s.AllowedHosts[:0]
		for _, h := range hosts {
			if h = strings.TrimSpace(h); h != "" {
				s.AllowedHosts = append(s.AllowedHosts, h)
			}
		}
	}
	if v := os.Getenv("LOCALTOP_GA_MEASUREMENT_ID"); v != "" {
		s.GAMeasurementID = v
	}
	if v := os.Getenv("LOCALTOP_FEED_URL"); v != "" {
		s.FeedURL = v
	}
	if v := os.Getenv("LOCALTOP_LEAD_ENDPOINT"); v != "" {
		s.LeadEndpoint = v
	}
}

func (s *Site) validate() error {
	if s.PerPage < 1 {
		s.PerPage = Defaults().PerPage
	}
	switch s.FilterPolicy {
	case "", "both", "query-clears-category", "category-clears-query":
	default:
		return fmt.Errorf("config: unknown filter_policy %q", s.FilterPolicy)
	}
	if s.FilterPolicy == "" {
		s.FilterPolicy = "both"
	}
	return nil
}

// HostAllowed reports whether analytics may run for the given request host.
func (s Site) HostAllowed(host string) bool {
	if i := strings.IndexByte(host, ':'); i != -1 {
		host = host[:i]
	}
	host = strings.ToLower(host)
	for _, h := range s.AllowedHosts {
		if host == strings.ToLower(h) {
			return true
		}
	}
	return false
}
