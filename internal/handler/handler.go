package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/coding-gurus/forum/internal/apperr"
	"github.com/coding-gurus/forum/internal/logger"
	"github.com/coding-gurus/forum/internal/markdown"
	"github.com/coding-gurus/forum/internal/service"
)

const baseTemplate = "base.html"

type Handler struct {
	thread   service.ThreadService
	reply    service.ReplyService
	renderer *markdown.Renderer

	// Templates maps page file names to parsed templates sharing the
	// base layout.
	Templates map[string]*template.Template
}

func New(thread service.ThreadService, reply service.ReplyService, renderer *markdown.Renderer, templates map[string]*template.Template) *Handler {
	return &Handler{thread: thread, reply: reply, renderer: renderer, Templates: templates}
}

func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data any) {
	tmpl, ok := h.Templates[name]
	if !ok {
		logger.Log.Error("template not found", "template", name)
		h.renderError(w, fmt.Errorf("template %s not found", name))
		return
	}

	// Render to a buffer first so a template failure can still produce
	// a clean error page instead of a half-written one.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseTemplate, data); err != nil {
		logger.Log.Error("template execution failed", "template", name, "error", err)
		h.renderError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

type errorPageData struct {
	StatusCode int
	Message    string
}

// renderError is the single boundary where every failure, typed or
// not, becomes the generic error page.
func (h *Handler) renderError(w http.ResponseWriter, err error) {
	status := apperr.StatusCode(err)
	message := apperr.Message(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "error", err)
	}

	tmpl, ok := h.Templates["error.html"]
	if !ok {
		http.Error(w, message, status)
		return
	}

	var buf bytes.Buffer
	if execErr := tmpl.ExecuteTemplate(&buf, baseTemplate, errorPageData{StatusCode: status, Message: message}); execErr != nil {
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// NotFoundPage handles every unmatched route.
func (h *Handler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, apperr.NotFound("Page not found!"))
}

// parseIdParam parses a route id. A malformed id is indistinguishable
// from a missing record to the user, so it maps to the same not-found
// error as a lookup miss.
func parseIdParam(param, notFoundMessage string) (int64, error) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil {
		return 0, apperr.NotFound(notFoundMessage)
	}
	return id, nil
}
