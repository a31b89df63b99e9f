package handler

import (
	"html/template"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/coding-gurus/forum/internal/domain"
	"github.com/coding-gurus/forum/internal/markdown"
	mw "github.com/coding-gurus/forum/internal/middleware"
)

// --- Mocks ---

type MockThreadService struct {
	listFunc   func() ([]domain.ThreadMetadata, error)
	createFunc func(creationData domain.ThreadCreationData) (domain.Thread, error)
	getFunc    func(id domain.ThreadId) (domain.Thread, error)
	updateFunc func(id domain.ThreadId, updateData domain.ThreadUpdateData) error
	deleteFunc func(id domain.ThreadId) error
}

func (m *MockThreadService) List() ([]domain.ThreadMetadata, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *MockThreadService) Create(creationData domain.ThreadCreationData) (domain.Thread, error) {
	if m.createFunc != nil {
		return m.createFunc(creationData)
	}
	return domain.Thread{ThreadMetadata: domain.ThreadMetadata{Id: 1, Title: creationData.Title, Content: creationData.Content}}, nil
}

func (m *MockThreadService) Get(id domain.ThreadId) (domain.Thread, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return domain.Thread{ThreadMetadata: domain.ThreadMetadata{Id: id}}, nil
}

func (m *MockThreadService) Update(id domain.ThreadId, updateData domain.ThreadUpdateData) error {
	if m.updateFunc != nil {
		return m.updateFunc(id, updateData)
	}
	return nil
}

func (m *MockThreadService) Delete(id domain.ThreadId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

type MockReplyService struct {
	createFunc func(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.Reply, error)
	getFunc    func(id domain.ReplyId) (domain.Reply, error)
	updateFunc func(threadId domain.ThreadId, replyId domain.ReplyId, updateData domain.ReplyUpdateData) error
	deleteFunc func(threadId domain.ThreadId, replyId domain.ReplyId) error
}

func (m *MockReplyService) Create(threadId domain.ThreadId, creationData domain.ReplyCreationData) (domain.Reply, error) {
	if m.createFunc != nil {
		return m.createFunc(threadId, creationData)
	}
	return domain.Reply{Id: 1, Content: creationData.Content}, nil
}

func (m *MockReplyService) Get(id domain.ReplyId) (domain.Reply, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return domain.Reply{Id: id}, nil
}

func (m *MockReplyService) Update(threadId domain.ThreadId, replyId domain.ReplyId, updateData domain.ReplyUpdateData) error {
	if m.updateFunc != nil {
		return m.updateFunc(threadId, replyId, updateData)
	}
	return nil
}

func (m *MockReplyService) Delete(threadId domain.ThreadId, replyId domain.ReplyId) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(threadId, replyId)
	}
	return nil
}

// --- Fixtures ---

// testTemplates builds a minimal template set so rendering handlers
// produce inspectable bodies without the real layout.
func testTemplates(t *testing.T) map[string]*template.Template {
	t.Helper()
	pages := map[string]string{
		"home.html":       `{{define "content"}}home{{end}}`,
		"index.html":      `{{define "content"}}{{range .Threads}}[{{.Title}}]{{end}}{{end}}`,
		"new.html":        `{{define "content"}}new-thread-form{{end}}`,
		"show.html":       `{{define "content"}}{{.Thread.Title}}{{range .Thread.Replies}}|{{.ContentHTML}}{{end}}{{end}}`,
		"edit.html":       `{{define "content"}}edit:{{.Thread.Title}}{{end}}`,
		"edit_reply.html": `{{define "content"}}edit-reply:{{.Reply.Content}}{{end}}`,
		"error.html":      `{{define "content"}}{{.StatusCode}}:{{.Message}}{{end}}`,
	}

	const base = `{{define "base.html"}}{{template "content" .}}{{end}}`
	templates := make(map[string]*template.Template, len(pages))
	for name, content := range pages {
		tmpl := template.Must(template.New("base.html").Parse(base))
		template.Must(tmpl.Parse(content))
		templates[name] = tmpl
	}
	return templates
}

func setupTestHandler(t *testing.T, threadSvc *MockThreadService, replySvc *MockReplyService) (*Handler, *chi.Mux) {
	t.Helper()
	h := New(threadSvc, replySvc, markdown.New(), testTemplates(t))

	r := chi.NewRouter()
	r.Use(mw.MethodOverride)
	r.Get("/", h.Home)
	r.Get("/threads", h.ListThreads)
	r.Get("/threads/new", h.NewThreadForm)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{id}", h.ShowThread)
	r.Get("/threads/{id}/edit", h.EditThreadForm)
	r.Put("/threads/{id}", h.UpdateThread)
	r.Delete("/threads/{id}", h.DeleteThread)
	r.Post("/threads/{id}/replies", h.CreateReply)
	r.Get("/threads/{id}/replies/{replyId}/edit", h.EditReplyForm)
	r.Put("/threads/{id}/replies/{replyId}", h.UpdateReply)
	r.Delete("/threads/{id}/replies/{replyId}", h.DeleteReply)
	r.NotFound(h.NotFoundPage)
	r.MethodNotAllowed(h.NotFoundPage)

	return h, r
}
