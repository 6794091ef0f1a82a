package workflow

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/techile/fieldportal/internal/domain/ticket"
	"github.com/techile/fieldportal/internal/shared/logger"
)

// FileTemplateProvider loads the intervention checklist template from a
// YAML file once at construction. A missing or malformed file falls back
// to the built-in eight-step checklist.
type FileTemplateProvider struct {
	template ticket.WorkflowTemplate
}

func NewFileTemplateProvider(path string, logger logger.Interface) *FileTemplateProvider {
	p := &FileTemplateProvider{template: ticket.DefaultWorkflowTemplate()}

	if path == "" {
		return p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warnw("failed to read workflow template file, using built-in template",
			"path", path, "error", err)
		return p
	}

	var tpl ticket.WorkflowTemplate
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		logger.Warnw("failed to parse workflow template file, using built-in template",
			"path", path, "error", err)
		return p
	}

	if tpl.IsEmpty() {
		logger.Warnw("workflow template file defines no steps, using built-in template",
			"path", path)
		return p
	}

	p.template = tpl
	logger.Infow("workflow template loaded", "path", path, "steps", len(tpl.Steps))
	return p
}

func (p *FileTemplateProvider) Template() ticket.WorkflowTemplate {
	return p.template
}
