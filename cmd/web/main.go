package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"localtop.it/web/internal/catalog"
	"localtop.it/web/internal/cms"
	"localtop.it/web/internal/config"
	"localtop.it/web/internal/consent"
	"localtop.it/web/internal/i18n"
	"localtop.it/web/internal/lead"
	mw "localtop.it/web/internal/middleware"
)

var (
	// devMode is set in main() based on env: LOCALTOP_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	cfg          config.Site
	i18nBundle   *i18n.Bundle
	feedClient   *catalog.Client
	leadClient   *lead.Client
	consentSvc   *consent.Service
	contentStore *cms.Store
	filterPolicy catalog.Policy
)

func main() {
	var (
		addr    string
		cfgPath string
	)
	// Port resolution: prefer LOCALTOP_PORT, then Cloud Run's PORT, else 8080
	port := os.Getenv("LOCALTOP_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&cfgPath, "config", os.Getenv("LOCALTOP_CONFIG"), "site config file (YAML)")
	flag.Parse()

	devMode = os.Getenv("LOCALTOP_DEV") != "" || os.Getenv("DEV") != ""

	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if addr != "" {
		cfg.Addr = addr
	}

	i18nBundle, err = i18n.Load(cfg.LocalesDir, "it", []string{"it", "en"})
	if err != nil {
		log.Fatalf("load locales: %v", err)
	}

	filterPolicy, err = catalog.ParsePolicy(cfg.FilterPolicy)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	feedClient = catalog.NewClient(cfg.FeedURL)
	leadClient = lead.NewClient(cfg.LeadEndpoint)
	if !leadClient.Configured() {
		log.Printf("lead: no endpoint configured, forms run inactive")
	}
	consentSvc = consent.NewService(cfg, cfg.GAMeasurementID, nil)
	consentSvc.SetSecureCookies(mw.SecureCookies())
	contentStore = cms.NewStore(cfg.ContentDir)

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			log.Fatalf("parse templates: %v", err)
		}
		tmplCache = tc
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("web listening on %s (devMode=%v)", cfg.Addr, devMode)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("listen: %v", err)
	}
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// Behind a trusted reverse proxy RealIP resolves the client address
	// from X-Forwarded-For.
	r.Use(chimw.RealIP)
	r.Use(mw.Session)
	r.Use(mw.Locale(i18nBundle))
	r.Use(mw.CSRF)
	r.Use(mw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets and the dev feed document.
	assets := http.StripPrefix("/assets/", mw.AssetsWithCache(filepath.Join(cfg.PublicDir, "assets")))
	r.Handle("/assets/*", assets)
	r.Handle("/data/*", http.StripPrefix("/data/", http.FileServer(http.Dir("data"))))

	r.Get("/", HomeHandler)
	r.Get("/esempi-di-siti", ExamplesHandler)

	r.Get("/onboarding", OnboardingFormHandler)
	r.Post("/onboarding", OnboardingSubmitHandler)
	r.Get("/fatturazione", BillingFormHandler)
	r.Post("/fatturazione", BillingSubmitHandler)
	r.Get("/conferma-dati", ConfirmDataHandler)
	r.Get("/grazie", ThankYouHandler)

	r.Get("/demo/{plan}", DemoHandler)
	r.Get("/premium-demo", PremiumDemoHandler)

	r.Post("/cookies/{action}", ConsentActionHandler)

	r.Get("/privacy", ContentPageHandler("privacy"))
	r.Get("/cookie-policy", ContentPageHandler("cookie"))

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
		"T": func(lang, key string) string {
			return i18nBundle.T(lang, key)
		},
		// jsonld passes a pre-built JSON-LD document through without JS
		// escaping; the seo package only emits marshaled JSON.
		"jsonld": func(s string) template.JS { return template.JS(s) },
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes the named page template. In dev mode, templates are
// reparsed on each request.
func render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	t := tmplCache
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, page, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
	}
}
