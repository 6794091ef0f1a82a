// Package website models hosted website projects: type, lifecycle from
// planning to live, and the editable site content block.
package website

import (
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/domain/website/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
)

// Page is one page of the site with its publish flag.
type Page struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
}

// Content is the editable site content block.
type Content struct {
	CompanyName    string   `json:"company_name,omitempty"`
	Tagline        string   `json:"tagline,omitempty"`
	Description    string   `json:"description,omitempty"`
	ContactEmail   string   `json:"contact_email,omitempty"`
	ContactPhone   string   `json:"contact_phone,omitempty"`
	Address        string   `json:"address,omitempty"`
	PrimaryColor   string   `json:"primary_color,omitempty"`
	SecondaryColor string   `json:"secondary_color,omitempty"`
	Pages          []Page   `json:"pages,omitempty"`
	SocialLinks    []string `json:"social_links,omitempty"`
}

// WebsiteProject is a client website under our management.
type WebsiteProject struct {
	id          uint
	clientID    uint
	name        string
	websiteType valueobjects.WebsiteType
	domain      string
	subdomain   string
	status      valueobjects.ProjectStatus
	content     Content
	launchedAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewWebsiteProject starts a project in planning. The subdomain is the
// slugified project name unless an explicit one is given.
func NewWebsiteProject(clientID uint, name string, websiteType valueobjects.WebsiteType, domain, subdomain string) (*WebsiteProject, error) {
	name = strings.TrimSpace(name)
	if clientID == 0 {
		return nil, errors.NewValidationError("client ID is required")
	}
	if name == "" {
		return nil, errors.NewValidationError("project name is required")
	}
	if !websiteType.IsValid() {
		return nil, errors.NewValidationError("invalid website type", websiteType.String())
	}

	if subdomain == "" {
		subdomain = name
	}
	slug := Slugify(subdomain)
	if slug == "" {
		return nil, errors.NewValidationError("subdomain cannot be derived from the name")
	}

	now := time.Now()
	return &WebsiteProject{
		clientID:    clientID,
		name:        name,
		websiteType: websiteType,
		domain:      strings.TrimSpace(strings.ToLower(domain)),
		subdomain:   slug,
		status:      valueobjects.StatusPlanning,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructWebsiteProject rebuilds a project from persistence.
func ReconstructWebsiteProject(
	id, clientID uint,
	name string,
	websiteType valueobjects.WebsiteType,
	domain, subdomain string,
	status valueobjects.ProjectStatus,
	content Content,
	launchedAt *time.Time,
	createdAt, updatedAt time.Time,
) *WebsiteProject {
	return &WebsiteProject{
		id:          id,
		clientID:    clientID,
		name:        name,
		websiteType: websiteType,
		domain:      domain,
		subdomain:   subdomain,
		status:      status,
		content:     content,
		launchedAt:  launchedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (w *WebsiteProject) ID() uint                              { return w.id }
func (w *WebsiteProject) ClientID() uint                        { return w.clientID }
func (w *WebsiteProject) Name() string                          { return w.name }
func (w *WebsiteProject) Type() valueobjects.WebsiteType        { return w.websiteType }
func (w *WebsiteProject) Domain() string                        { return w.domain }
func (w *WebsiteProject) Subdomain() string                     { return w.subdomain }
func (w *WebsiteProject) Status() valueobjects.ProjectStatus    { return w.status }
func (w *WebsiteProject) Content() Content                      { return w.content }
func (w *WebsiteProject) LaunchedAt() *time.Time                { return w.launchedAt }
func (w *WebsiteProject) CreatedAt() time.Time                  { return w.createdAt }
func (w *WebsiteProject) UpdatedAt() time.Time                  { return w.updatedAt }

// SetID sets the ID after persistence.
func (w *WebsiteProject) SetID(id uint) { w.id = id }

// IsLive reports whether the site is publicly reachable.
func (w *WebsiteProject) IsLive() bool {
	return w.status == valueobjects.StatusLive
}

// UpdateContent replaces the content block.
func (w *WebsiteProject) UpdateContent(c Content) {
	w.content = c
	w.updatedAt = time.Now()
}

// PublishPage flips the publish flag of a page by slug.
func (w *WebsiteProject) PublishPage(slug string, published bool) error {
	for i := range w.content.Pages {
		if w.content.Pages[i].Slug == slug {
			w.content.Pages[i].Published = published
			w.updatedAt = time.Now()
			return nil
		}
	}
	return errors.NewNotFoundError("page not found", slug)
}

// ChangeStatus moves the project along its lifecycle. Going live stamps
// launchedAt the first time.
func (w *WebsiteProject) ChangeStatus(newStatus valueobjects.ProjectStatus) error {
	if !newStatus.IsValid() {
		return errors.NewValidationError("invalid website status", newStatus.String())
	}
	if !w.status.CanTransitionTo(newStatus) {
		return errors.NewValidationError(
			"cannot transition website from " + w.status.String() + " to " + newStatus.String())
	}

	now := time.Now()
	w.status = newStatus
	if newStatus == valueobjects.StatusLive && w.launchedAt == nil {
		w.launchedAt = &now
	}
	w.updatedAt = now
	return nil
}
