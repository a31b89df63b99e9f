package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/coding-gurus/forum/internal/domain"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	creation := domain.ReplyCreationData{
		Content: r.FormValue("reply[replyContent]"),
	}
	if _, err := h.reply.Create(threadId, creation); err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/threads/%d", threadId), http.StatusSeeOther)
}

func (h *Handler) EditReplyForm(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}
	replyId, err := parseIdParam(chi.URLParam(r, "replyId"), "Reply not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	reply, err := h.reply.Get(replyId)
	if err != nil {
		h.renderError(w, err)
		return
	}

	data := struct {
		ThreadId domain.ThreadId
		Reply    domain.Reply
	}{ThreadId: threadId, Reply: reply}
	h.renderTemplate(w, "edit_reply.html", data)
}

func (h *Handler) UpdateReply(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}
	replyId, err := parseIdParam(chi.URLParam(r, "replyId"), "Reply not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	update := domain.ReplyUpdateData{
		Content: r.FormValue("reply[replyContent]"),
	}
	if err := h.reply.Update(threadId, replyId, update); err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/threads/%d", threadId), http.StatusSeeOther)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIdParam(chi.URLParam(r, "id"), "Thread not found")
	if err != nil {
		h.renderError(w, err)
		return
	}
	replyId, err := parseIdParam(chi.URLParam(r, "replyId"), "Reply not found")
	if err != nil {
		h.renderError(w, err)
		return
	}

	if err := h.reply.Delete(threadId, replyId); err != nil {
		h.renderError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/threads/%d", threadId), http.StatusSeeOther)
}
