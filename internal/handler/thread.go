package handler

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coding-gurus/forum/internal/domain"
)

// ThreadView carries a thread to the show template with its content
// and replies rendered to safe HTML.
type ThreadView struct {
	domain.ThreadMetadata
	ContentHTML template.HTML
	Replies     []ReplyView
}

type ReplyView struct {
	domain.Reply
	ContentHTML template.HTML
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, "home.html", nil)
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List()
	if err != nil {
		h.renderError(w, err)
		return
	}

	data := struct {
		Threads []domain.ThreadMetadata
	}{Threads: threads}
	h.renderTemplate(w, "index.html", data)
}

func (h *Handler) NewThreadForm(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, "new.html", nil)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	creation := domain.ThreadCreationData{
		Title:   r.FormValue("thread[title]"),
		Content: r.FormValue("thread[content]"),
	}

	thread, err := h.thread.Create(creation)
	if err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/threads/%d", thread.Id), http.StatusSeeOther)
}

func (h *Handler) ShowThread(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	thread, err := h.thread.Get(id)
	if err != nil {
		h.renderError(w, err)
		return
	}

	view := ThreadView{
		ThreadMetadata: thread.ThreadMetadata,
		ContentHTML:    h.renderer.Render(thread.Content),
		Replies:        make([]ReplyView, 0, len(thread.Replies)),
	}
	for _, reply := range thread.Replies {
		view.Replies = append(view.Replies, ReplyView{
			Reply:       *reply,
			ContentHTML: h.renderer.Render(reply.Content),
		})
	}

	data := struct {
		Thread ThreadView
	}{Thread: view}
	h.renderTemplate(w, "show.html", data)
}

func (h *Handler) EditThreadForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	thread, err := h.thread.Get(id)
	if err != nil {
		h.renderError(w, err)
		return
	}

	data := struct {
		Thread domain.ThreadMetadata
	}{Thread: thread.ThreadMetadata}
	h.renderTemplate(w, "edit.html", data)
}

func (h *Handler) UpdateThread(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	update := domain.ThreadUpdateData{
		Title:   r.FormValue("thread[title]"),
		Content: r.FormValue("thread[content]"),
	}
	if err := h.thread.Update(id, update); err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/threads/%d", id), http.StatusSeeOther)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	if err := h.thread.Delete(id); err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, "/threads", http.StatusSeeOther)
}
