// Package cms serves the static policy pages (privacy, cookie) from
// local markdown files with YAML front matter.
package cms

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no page exists for a slug.
var ErrNotFound = errors.New("cms: not found")

// Page is a rendered content page.
type Page struct {
	Slug      string
	Title     string
	Summary   string
	BodyHTML  string // sanitized
	Version   string
	UpdatedAt time.Time
}

type frontMatter struct {
	Title     string `yaml:"title"`
	Summary   string `yaml:"summary"`
	Version   string `yaml:"version"`
	UpdatedAt string `yaml:"updated_at"`
}

// Store reads pages from a directory and caches renders.
type Store struct {
	dir    string
	ttl    time.Duration
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	page    Page
	expires time.Time
}

// NewStore builds a Store over dir. Pages live at <dir>/<slug>.md.
func NewStore(dir string) *Store {
	return &Store{
		dir:    strings.TrimSpace(dir),
		ttl:    5 * time.Minute,
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
		cache:  map[string]cacheEntry{},
	}
}

// SetCacheDuration overrides the render cache TTL (primarily for tests).
func (s *Store) SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	s.ttl = d
}

// Get returns the rendered page for slug.
func (s *Store) Get(slug string) (Page, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}

	s.mu.RLock()
	if e, ok := s.cache[slug]; ok && time.Now().Before(e.expires) {
		s.mu.RUnlock()
		return e.page, nil
	}
	s.mu.RUnlock()

	page, err := s.load(slug)
	if err != nil {
		return Page{}, err
	}

	s.mu.Lock()
	s.cache[slug] = cacheEntry{page: page, expires: time.Now().Add(s.ttl)}
	s.mu.Unlock()
	return page, nil
}

func (s *Store) load(slug string) (Page, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, slug+".md"))
	if err != nil {
		if os.IsNotExist(err) {
			return Page{}, ErrNotFound
		}
		return Page{}, fmt.Errorf("cms: read %s: %w", slug, err)
	}

	fm, body := splitFrontMatter(raw)
	var meta frontMatter
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return Page{}, fmt.Errorf("cms: front matter %s: %w", slug, err)
		}
	}

	var buf bytes.Buffer
	if err := s.md.Convert(body, &buf); err != nil {
		return Page{}, fmt.Errorf("cms: render %s: %w", slug, err)
	}

	page := Page{
		Slug:     slug,
		Title:    meta.Title,
		Summary:  meta.Summary,
		BodyHTML: s.policy.Sanitize(buf.String()),
		Version:  meta.Version,
	}
	if meta.UpdatedAt != "" {
		if t, err := time.Parse("2006-01-02", meta.UpdatedAt); err == nil {
			page.UpdatedAt = t
		}
	}
	if page.Title == "" {
		page.Title = slug
	}
	return page, nil
}

// splitFrontMatter separates a leading "---" YAML block from the body.
func splitFrontMatter(raw []byte) (fm, body []byte) {
	const delim = "---"
	text := string(raw)
	if !strings.HasPrefix(text, delim) {
		return nil, raw
	}
	rest := text[len(delim):]
	if i := strings.Index(rest, "\n"+delim); i != -1 {
		fm = []byte(rest[:i])
		after := rest[i+1+len(delim):]
		after = strings.TrimPrefix(after, "\n")
		return fm, []byte(after)
	}
	return nil, raw
}

func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, r := range slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return ""
		}
	}
	return slug
}
