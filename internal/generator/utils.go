package generator

import (
	"sync"
	"text/template"

	"github.com/xll-gen/bin2c/internal/templates"
)

const declarationTemplate = "declaration.h.tmpl"

var (
	declOnce sync.Once
	declTmpl *template.Template
	declErr  error
)

// declarationTemplates parses the declaration template once per process.
func declarationTemplates() (*template.Template, error) {
	declOnce.Do(func() {
		declTmpl, declErr = templates.Parse(declarationTemplate, GetCommonFuncMap())
	})
	return declTmpl, declErr
}
