package web

import (
	"encoding/json"
	"errors"
	"image"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rook-computer/postermaker/internal/download"
	"github.com/rook-computer/postermaker/internal/poster"
	"github.com/rook-computer/postermaker/internal/render"
	"github.com/rook-computer/postermaker/internal/state"
	"github.com/rook-computer/postermaker/internal/theme"
)

const (
	maxRequestBytes       = 64 << 10
	defaultThumbnailWidth = 200
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type themeResponse struct {
	Name   string `json:"name"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
	Text   string `json:"text"`
	Accent string `json:"accent"`
}

type linkResponse struct {
	Filename string `json:"filename"`
	Link     string `json:"link"`
}

type statusResponse struct {
	Fonts    string    `json:"fonts"`
	FooterQR bool      `json:"footerQR"`
	Source   string    `json:"source,omitempty"`
	LoadedAt time.Time `json:"loadedAt"`
	Reloads  int       `json:"reloads"`
	Themes   []string  `json:"themes"`
}

// posterRequest is accepted as JSON or as form fields.
type posterRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Theme    string `json:"theme"`
	QR       *bool  `json:"qr,omitempty"`
	Filename string `json:"filename,omitempty"`
}

func apiV1Router(store Snapshotter, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/themes", handleThemes)
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) { handleStatus(w, r, store) })
	mux.HandleFunc("/posters", func(w http.ResponseWriter, r *http.Request) { handlePoster(w, r, store, logger) })
	mux.HandleFunc("/posters/link", func(w http.ResponseWriter, r *http.Request) { handlePosterLink(w, r, store, logger) })
	mux.HandleFunc("/posters/thumbnail", func(w http.ResponseWriter, r *http.Request) { handlePosterThumbnail(w, r, store, logger) })
	return mux
}

func handleThemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	themes := theme.All()
	resp := make([]themeResponse, 0, len(themes))
	for _, t := range themes {
		resp = append(resp, themeResponse{
			Name:   t.Name,
			Top:    t.BackgroundTop.Hex(),
			Bottom: t.BackgroundBottom.Hex(),
			Text:   t.Text.Hex(),
			Accent: t.Accent.Hex(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func handleStatus(w http.ResponseWriter, r *http.Request, store Snapshotter) {
	if r.Method != http.MethodGet {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	snap := store.Snapshot()
	writeJSON(w, http.StatusOK, statusResponse{
		Fonts:    snap.Composer.Fonts().Name(),
		FooterQR: snap.Composer.FooterQR(),
		Source:   snap.Source,
		LoadedAt: snap.LoadedAt,
		Reloads:  snap.Reloads,
		Themes:   theme.Names(),
	})
}

func handlePoster(w http.ResponseWriter, r *http.Request, store Snapshotter, logger *slog.Logger) {
	req, img, ok := composeFromRequest(w, r, store, logger)
	if !ok {
		return
	}
	b, err := download.EncodePNG(img)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	setDownloadHeaders(w, req.Filename, download.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func handlePosterLink(w http.ResponseWriter, r *http.Request, store Snapshotter, logger *slog.Logger) {
	req, img, ok := composeFromRequest(w, r, store, logger)
	if !ok {
		return
	}
	link, err := download.Link(img, req.Filename)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, linkResponse{Filename: req.Filename, Link: link})
}

func handlePosterThumbnail(w http.ResponseWriter, r *http.Request, store Snapshotter, logger *slog.Logger) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return
	}
	width := defaultThumbnailWidth
	if raw := r.URL.Query().Get("width"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > render.PosterWidth {
			writeAPIError(w, http.StatusBadRequest, "invalid_width", "width must be between 1 and "+strconv.Itoa(render.PosterWidth))
			return
		}
		width = v
	}
	_, img, ok := composeFromRequest(w, r, store, logger)
	if !ok {
		return
	}
	b, err := download.EncodePNG(render.Thumbnail(img, width))
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "encode_failed", err.Error())
		return
	}
	w.Header().Set("Content-Type", download.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// composeFromRequest decodes a poster request and renders it. On failure it
// writes the error response and returns ok=false.
func composeFromRequest(w http.ResponseWriter, r *http.Request, store Snapshotter, logger *slog.Logger) (posterRequest, image.Image, bool) {
	if r.Method != http.MethodPost {
		writeAPIError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
		return posterRequest{}, nil, false
	}
	req, err := decodePosterRequest(w, r)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeAPIError(w, http.StatusRequestEntityTooLarge, "too_large", err.Error())
			return posterRequest{}, nil, false
		}
		writeAPIError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return posterRequest{}, nil, false
	}
	start := time.Now()
	img := composePoster(store.Snapshot(), req)
	logger.Debug("poster rendered",
		slog.String("theme", theme.Resolve(req.Theme).Name),
		slog.Int("bodyLen", len(req.Body)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return req, img, true
}

func composePoster(snap state.State, req posterRequest) *image.RGBA {
	composer := snap.Composer
	if composer == nil {
		composer = poster.New()
	}
	if req.QR != nil && *req.QR != composer.FooterQR() {
		composer = composer.WithQR(*req.QR)
	}
	return composer.Compose(poster.Request{Title: req.Title, Body: req.Body, Theme: req.Theme})
}

func decodePosterRequest(w http.ResponseWriter, r *http.Request) (posterRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
	var req posterRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return posterRequest{}, err
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return posterRequest{}, err
		}
		req.Title = r.PostForm.Get("title")
		req.Body = r.PostForm.Get("body")
		req.Theme = r.PostForm.Get("theme")
		req.Filename = r.PostForm.Get("filename")
		if r.PostForm.Has("qr") {
			v := parseCheckbox(r.PostForm.Get("qr"))
			req.QR = &v
		}
	}
	req.Filename = sanitizeFilename(req.Filename)
	return req, nil
}

func parseCheckbox(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func setDownloadHeaders(w http.ResponseWriter, filename, contentType string) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	cd := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	w.Header().Set("Content-Disposition", cd)
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return download.DefaultFilename
	}
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if !strings.HasSuffix(strings.ToLower(name), ".png") {
		name += ".png"
	}
	return name
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, apiError{Error: code, Message: message})
}
