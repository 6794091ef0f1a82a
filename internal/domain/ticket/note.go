package ticket

import (
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/shared/errors"
)

// NoteType classifies a technician note by the phase it documents.
type NoteType string

const (
	NoteDiagnostic   NoteType = "diagnostic"
	NoteIntervention NoteType = "intervention"
	NoteCompletion   NoteType = "completion"
)

func (nt NoteType) IsValid() bool {
	return nt == NoteDiagnostic || nt == NoteIntervention || nt == NoteCompletion
}

func (nt NoteType) String() string {
	return string(nt)
}

// TechnicianNote is a timestamped free-text note attached to a ticket by
// the technician working it.
type TechnicianNote struct {
	Type      NoteType  `json:"type"`
	AuthorID  uint      `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AddNote appends a technician note. Terminal tickets are read-only.
func (t *Ticket) AddNote(noteType NoteType, authorID uint, content string) error {
	content = strings.TrimSpace(content)
	if !noteType.IsValid() {
		return errors.NewValidationError("invalid note type", noteType.String())
	}
	if authorID == 0 {
		return errors.NewValidationError("author ID is required")
	}
	if content == "" {
		return errors.NewValidationError("note content is required")
	}
	if t.status.IsTerminal() {
		return errors.NewConflictError("cannot add notes to a " + t.status.String() + " ticket")
	}

	t.notes = append(t.notes, TechnicianNote{
		Type:      noteType,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	})
	t.updatedAt = time.Now()
	return nil
}
