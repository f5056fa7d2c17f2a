package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	appprofiles "github.com/xlhuang/ai-radar/internal/application/profiles"
	domai "github.com/xlhuang/ai-radar/internal/domain/ai"
	domain "github.com/xlhuang/ai-radar/internal/domain/profile"
	"github.com/xlhuang/ai-radar/internal/middleware"
)

type Router struct {
	svc     *appprofiles.Service
	baseURL string
	log     *zap.Logger
}

// NewRouter mounts the profile endpoints. baseURL is the public prefix share
// links are built from, e.g. "https://radar.example.com".
func NewRouter(svc *appprofiles.Service, baseURL string, checkers map[string]middleware.HealthChecker, log *zap.Logger) http.Handler {
	r := &Router{svc: svc, baseURL: baseURL, log: log}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.HealthHandler(checkers))
	mux.Get("/livez", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/profiles", r.wrap(r.handleGenerate))
		rt.Get("/profiles/{shareID}", r.wrap(r.handleReplay))
		rt.Get("/profiles/{shareID}/qr", r.wrap(r.handleQR))
		rt.Post("/profiles/{shareID}/snapshot", r.wrap(r.handleSnapshot))
	})

	// The share-link form: /share?id=<share id> replays a stored result
	// without re-running the model.
	mux.Get("/share", r.wrap(r.handleShareLink))

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap converts pipeline errors into user-facing responses. Nothing
// propagates as an unhandled fault.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			http.Error(w, verr.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrRecordNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrMalformedResponse):
			http.Error(w, "analysis failed, please retry with more detailed answers", http.StatusUnprocessableEntity)
		case errors.Is(err, domai.ErrUnavailable):
			http.Error(w, "analysis service unavailable, please try again", http.StatusBadGateway)
		case errors.Is(err, domai.ErrNotConfigured):
			r.log.Error("analysis requested without api key", zap.String("path", req.URL.Path))
			http.Error(w, "analysis service is not configured, contact the administrator", http.StatusInternalServerError)
		case errors.Is(err, domain.ErrStoreUnavailable):
			http.Error(w, "could not reach the record store, try again", http.StatusServiceUnavailable)
		default:
			r.log.Error("unhandled pipeline error", zap.String("path", req.URL.Path), zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /v1/profiles
// Body: {"nickname": "...", "innovation": "...", "collaboration": "...",
//        "leadership": "...", "tech_acumen": "..."}
func (r *Router) handleGenerate(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Nickname      string `json:"nickname"`
		Innovation    string `json:"innovation"`
		Collaboration string `json:"collaboration"`
		Leadership    string `json:"leadership"`
		TechAcumen    string `json:"tech_acumen"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return nil
	}

	cmd := appprofiles.GenerateCommand{
		Nickname: middleware.SanitizeString(body.Nickname),
		Inputs: domain.Inputs{
			Innovation:    body.Innovation,
			Collaboration: body.Collaboration,
			Leadership:    body.Leadership,
			TechAcumen:    body.TechAcumen,
		},
	}

	middleware.IncrementAnalyses()
	res, err := r.svc.Generate(req.Context(), cmd)
	if err != nil {
		middleware.IncrementAnalysesFailed()
		return err
	}
	if res.Saved {
		middleware.IncrementRecordsSaved()
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(res)
}

// GET /v1/profiles/{shareID}
func (r *Router) handleReplay(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "shareID")
	if err := middleware.ValidateShareID(id); err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.svc.Replay(req.Context(), domain.ShareID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(res)
}

// GET /share?id=<share id>
func (r *Router) handleShareLink(w http.ResponseWriter, req *http.Request) error {
	id := req.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing share id", http.StatusBadRequest)
		return nil
	}
	if err := middleware.ValidateShareID(id); err != nil {
		return domain.ErrRecordNotFound
	}

	res, err := r.svc.Replay(req.Context(), domain.ShareID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(res)
}

// GET /v1/profiles/{shareID}/qr
func (r *Router) handleQR(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "shareID")
	if err := middleware.ValidateShareID(id); err != nil {
		return domain.ErrRecordNotFound
	}

	// Only encode links that resolve to a stored record.
	if _, err := r.svc.Replay(req.Context(), domain.ShareID(id)); err != nil {
		return err
	}

	shareURL := fmt.Sprintf("%s/share?id=%s", r.baseURL, id)
	png, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "image/png")
	_, err = w.Write(png)
	return err
}

// POST /v1/profiles/{shareID}/snapshot
func (r *Router) handleSnapshot(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "shareID")
	if err := middleware.ValidateShareID(id); err != nil {
		return domain.ErrRecordNotFound
	}

	url, err := r.svc.Snapshot(req.Context(), domain.ShareID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]string{"url": url})
}
