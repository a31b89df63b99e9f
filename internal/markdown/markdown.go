// Package markdown turns user-submitted thread and reply text into
// safe HTML for the templates: a restricted markdown render followed
// by an HTML sanitize pass.
package markdown

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Strikethrough),
		goldmark.WithRendererOptions(
			// Forum posts treat single newlines as line breaks.
			html.WithHardWraps(),
		),
	)
	return &Renderer{md: md, policy: bluemonday.UGCPolicy()}
}

// Render converts text to sanitized HTML. On a render failure the raw
// text is still sanitized and returned, so a post never disappears.
func (r *Renderer) Render(text string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return template.HTML(r.policy.Sanitize(text))
	}
	return template.HTML(r.policy.Sanitize(buf.String()))
}
