package setup

import (
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"

	"github.com/coding-gurus/forum/internal/config"
	"github.com/coding-gurus/forum/internal/handler"
	"github.com/coding-gurus/forum/internal/markdown"
	"github.com/coding-gurus/forum/internal/service"
	"github.com/coding-gurus/forum/internal/storage/pg"
	"github.com/coding-gurus/forum/internal/validation"
)

const baseTemplate = "base.html"

// Dependencies holds everything the application needs at runtime.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	thread := service.NewThread(storage, validation.ThreadRules{})
	reply := service.NewReply(storage, validation.ReplyRules{})

	templates, err := loadTemplates(cfg.Public.TemplateDir)
	if err != nil {
		storage.Cleanup()
		return nil, err
	}

	h := handler.New(thread, reply, markdown.New(), templates)

	return &Dependencies{
		Storage: storage,
		Handler: h,
	}, nil
}

// loadTemplates parses each page template against the shared base
// layout, keyed by file name.
func loadTemplates(tmplPath string) (map[string]*template.Template, error) {
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read template dir: %w", err)
	}

	templates := make(map[string]*template.Template)
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".html" || f.Name() == baseTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).ParseFiles(
			path.Join(tmplPath, baseTemplate),
			path.Join(tmplPath, f.Name()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", f.Name(), err)
		}
		templates[f.Name()] = tmpl
	}
	return templates, nil
}
