package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/rook-computer/postermaker/internal/assets"
	"github.com/rook-computer/postermaker/internal/download"
	"github.com/rook-computer/postermaker/internal/theme"
)

const (
	defaultFormTitle = "Live Fully"
	defaultFormBody  = "Life is meant to be lived to the fullest. Embrace the moment, cherish relationships, and never stop growing."
)

var indexTemplate = template.Must(template.New("index").Parse(assets.IndexHTML))

type themeOption struct {
	Name     string
	Selected bool
}

type pageData struct {
	Title     string
	Body      string
	QR        bool
	Themes    []themeOption
	PosterURI template.URL
	Link      template.HTML
	Error     string
}

type uiHandler struct {
	store  Snapshotter
	logger *slog.Logger
}

func newUIHandler(store Snapshotter, logger *slog.Logger) http.Handler {
	return &uiHandler{store: store, logger: logger}
}

func (h *uiHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	snap := h.store.Snapshot()
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, http.StatusOK, pageData{
			Title:  defaultFormTitle,
			Body:   defaultFormBody,
			QR:     snap.Composer.FooterQR(),
			Themes: themeOptions(snap.Config.DefaultTheme),
		})
	case http.MethodPost:
		req, err := decodePosterRequest(w, r)
		if err != nil {
			h.render(w, http.StatusBadRequest, pageData{Themes: themeOptions(snap.Config.DefaultTheme), Error: err.Error()})
			return
		}
		// An unchecked checkbox is not submitted at all.
		qr := req.QR != nil && *req.QR
		req.QR = &qr
		data := pageData{
			Title:  req.Title,
			Body:   req.Body,
			QR:     qr,
			Themes: themeOptions(theme.Resolve(req.Theme).Name),
		}
		img := composePoster(snap, req)
		uri, err := download.DataURI(img)
		if err == nil {
			data.PosterURI = template.URL(uri)
			data.Link = template.HTML(download.LinkFromURI(uri, req.Filename))
		}
		if err != nil {
			h.logger.Error("poster encode failed", slog.String("error", err.Error()))
			data.Error = err.Error()
			h.render(w, http.StatusInternalServerError, data)
			return
		}
		h.render(w, http.StatusOK, data)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *uiHandler) render(w http.ResponseWriter, status int, data pageData) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		h.logger.Error("template failed", slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func themeOptions(selected string) []themeOption {
	names := theme.Names()
	opts := make([]themeOption, 0, len(names))
	for _, name := range names {
		opts = append(opts, themeOption{Name: name, Selected: name == selected})
	}
	return opts
}
