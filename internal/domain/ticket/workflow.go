package ticket

import (
	"math"
	"time"
)

// WorkflowStep is one item of an intervention checklist. Required steps
// gate completion of the ticket; optional steps only feed the progress
// percentage.
type WorkflowStep struct {
	ID          int        `json:"id"`
	Label       string     `json:"label"`
	Description string     `json:"description,omitempty"`
	Required    bool       `json:"required"`
	Completed   bool       `json:"completed"`
	Notes       string     `json:"notes,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// WorkflowTemplate is an ordered list of step definitions used to seed a
// ticket's checklist.
type WorkflowTemplate struct {
	Steps []WorkflowStepTemplate `yaml:"steps" json:"steps"`
}

// WorkflowStepTemplate is one step definition inside a template.
type WorkflowStepTemplate struct {
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description" json:"description"`
	Required    bool   `yaml:"required" json:"required"`
}

// DefaultWorkflowTemplate is the canonical eight-step intervention
// checklist. Documentation and client training are the only optional steps.
func DefaultWorkflowTemplate() WorkflowTemplate {
	return WorkflowTemplate{Steps: []WorkflowStepTemplate{
		{Label: "Arrivée sur site", Description: "Confirmer l'arrivée chez le client", Required: true},
		{Label: "Diagnostic", Description: "Identifier la cause du problème", Required: true},
		{Label: "Préparation", Description: "Rassembler outils et pièces nécessaires", Required: true},
		{Label: "Intervention", Description: "Effectuer la réparation ou l'installation", Required: true},
		{Label: "Tests", Description: "Vérifier le bon fonctionnement", Required: true},
		{Label: "Documentation", Description: "Photos et notes techniques", Required: false},
		{Label: "Formation client", Description: "Expliquer les changements au client", Required: false},
		{Label: "Nettoyage", Description: "Remettre les lieux en état", Required: true},
	}}
}

// Materialize turns the template into fresh workflow steps with sequential
// IDs starting at 1.
func (t WorkflowTemplate) Materialize() []WorkflowStep {
	steps := make([]WorkflowStep, len(t.Steps))
	for i, def := range t.Steps {
		steps[i] = WorkflowStep{
			ID:          i + 1,
			Label:       def.Label,
			Description: def.Description,
			Required:    def.Required,
		}
	}
	return steps
}

// IsEmpty reports whether the template defines no steps.
func (t WorkflowTemplate) IsEmpty() bool {
	return len(t.Steps) == 0
}

// completionPercentage is round(100 * completed / total), 0 for an empty
// checklist.
func completionPercentage(steps []WorkflowStep) int {
	if len(steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range steps {
		if s.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(steps))))
}

// incompleteRequiredSteps lists the labels of required steps not yet done.
func incompleteRequiredSteps(steps []WorkflowStep) []string {
	var labels []string
	for _, s := range steps {
		if s.Required && !s.Completed {
			labels = append(labels, s.Label)
		}
	}
	return labels
}
