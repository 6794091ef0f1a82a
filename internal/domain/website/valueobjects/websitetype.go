package valueobjects

import "fmt"

// WebsiteType classifies a website project by scope.
type WebsiteType string

const (
	// TypeVitrine is a small brochure site.
	TypeVitrine WebsiteType = "vitrine"
	// TypePME is a small-business site with more pages and forms.
	TypePME WebsiteType = "pme"
	// TypeEcommerce is an online store.
	TypeEcommerce WebsiteType = "ecommerce"
)

func (wt WebsiteType) String() string {
	return string(wt)
}

func (wt WebsiteType) IsValid() bool {
	return wt == TypeVitrine || wt == TypePME || wt == TypeEcommerce
}

func NewWebsiteType(s string) (WebsiteType, error) {
	wt := WebsiteType(s)
	if !wt.IsValid() {
		return "", fmt.Errorf("invalid website type: %s, must be 'vitrine', 'pme', or 'ecommerce'", s)
	}
	return wt, nil
}
