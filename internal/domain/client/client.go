package client

import (
	"strings"
	"time"

	"github.com/techile/fieldportal/internal/domain/client/valueobjects"
	"github.com/techile/fieldportal/internal/shared/errors"
)

// Client is a billed customer account. A client is linked to exactly one
// portal user and owns subscriptions, tickets, invoices, and website
// projects.
type Client struct {
	id           uint
	userID       uint
	companyName  string
	firstName    string
	lastName     string
	email        string
	phone        string
	address      string
	city         string
	province     string
	postalCode   string
	isInIslands  bool
	status       valueobjects.ClientStatus
	priority     valueobjects.ClientPriority
	notes        string
	cloudQuotaGB float64
	cloudUsedGB  float64
	createdAt    time.Time
	updatedAt    time.Time
}

// NewClient creates a client account for a user. Email is required; the
// profile fields may arrive empty and get filled in later through
// UpdateProfile.
func NewClient(userID uint, email, companyName string) (*Client, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if userID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}

	now := time.Now()
	return &Client{
		userID:      userID,
		email:       email,
		companyName: strings.TrimSpace(companyName),
		status:      valueobjects.StatusActive,
		priority:    valueobjects.PriorityNormal,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructClient rebuilds a client from persistence.
func ReconstructClient(
	id uint,
	userID uint,
	companyName, firstName, lastName, email, phone, address, city, province, postalCode string,
	isInIslands bool,
	status valueobjects.ClientStatus,
	priority valueobjects.ClientPriority,
	notes string,
	cloudQuotaGB, cloudUsedGB float64,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:           id,
		userID:       userID,
		companyName:  companyName,
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		phone:        phone,
		address:      address,
		city:         city,
		province:     province,
		postalCode:   postalCode,
		isInIslands:  isInIslands,
		status:       status,
		priority:     priority,
		notes:        notes,
		cloudQuotaGB: cloudQuotaGB,
		cloudUsedGB:  cloudUsedGB,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Client) ID() uint                               { return c.id }
func (c *Client) UserID() uint                           { return c.userID }
func (c *Client) CompanyName() string                    { return c.companyName }
func (c *Client) FirstName() string                      { return c.firstName }
func (c *Client) LastName() string                       { return c.lastName }
func (c *Client) Email() string                          { return c.email }
func (c *Client) Phone() string                          { return c.phone }
func (c *Client) Address() string                        { return c.address }
func (c *Client) City() string                           { return c.city }
func (c *Client) Province() string                       { return c.province }
func (c *Client) PostalCode() string                     { return c.postalCode }
func (c *Client) IsInIslands() bool                      { return c.isInIslands }
func (c *Client) Status() valueobjects.ClientStatus      { return c.status }
func (c *Client) Priority() valueobjects.ClientPriority  { return c.priority }
func (c *Client) Notes() string                          { return c.notes }
func (c *Client) CloudQuotaGB() float64                  { return c.cloudQuotaGB }
func (c *Client) CloudUsedGB() float64                   { return c.cloudUsedGB }
func (c *Client) CreatedAt() time.Time                   { return c.createdAt }
func (c *Client) UpdatedAt() time.Time                   { return c.updatedAt }

// SetID sets the ID after persistence.
func (c *Client) SetID(id uint) { c.id = id }

// DisplayName returns the name shown in lists: the company name when set,
// otherwise the contact's full name, otherwise the email.
func (c *Client) DisplayName() string {
	if c.companyName != "" {
		return c.companyName
	}
	full := strings.TrimSpace(c.firstName + " " + c.lastName)
	if full != "" {
		return full
	}
	return c.email
}

// ProfileUpdate carries the editable profile fields. Values are applied
// as-is; an empty string clears the field.
type ProfileUpdate struct {
	CompanyName string
	FirstName   string
	LastName    string
	Phone       string
	Address     string
	City        string
	Province    string
	PostalCode  string
	IsInIslands bool
}

// UpdateProfile applies a profile edit. Email is identity and is not
// editable here.
func (c *Client) UpdateProfile(u ProfileUpdate) {
	c.companyName = strings.TrimSpace(u.CompanyName)
	c.firstName = strings.TrimSpace(u.FirstName)
	c.lastName = strings.TrimSpace(u.LastName)
	c.phone = strings.TrimSpace(u.Phone)
	c.address = strings.TrimSpace(u.Address)
	c.city = strings.TrimSpace(u.City)
	c.province = strings.TrimSpace(u.Province)
	c.postalCode = strings.TrimSpace(u.PostalCode)
	c.isInIslands = u.IsInIslands
	c.updatedAt = time.Now()
}

// ProfileValidation is the gate result returned to callers. IsComplete and
// CanPurchase report the same condition; both are kept because clients of
// the API read them independently.
type ProfileValidation struct {
	MissingFields []string `json:"missing_fields"`
	IsComplete    bool     `json:"is_complete"`
	CanPurchase   bool     `json:"can_purchase"`
}

// ValidateProfile evaluates the purchase gate over the five required fields.
func (c *Client) ValidateProfile() ProfileValidation {
	missing := c.MissingProfileFields()
	complete := len(missing) == 0
	return ProfileValidation{
		MissingFields: missing,
		IsComplete:    complete,
		CanPurchase:   complete,
	}
}

// MissingProfileFields lists the required profile fields that are still
// empty. First name, last name, phone, address, and city gate purchasing;
// postal code does not.
func (c *Client) MissingProfileFields() []string {
	var missing []string
	if strings.TrimSpace(c.firstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(c.lastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(c.phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(c.address) == "" {
		missing = append(missing, "address")
	}
	if strings.TrimSpace(c.city) == "" {
		missing = append(missing, "city")
	}
	return missing
}

// IsProfileComplete reports whether all purchase-gating fields are filled.
func (c *Client) IsProfileComplete() bool {
	return len(c.MissingProfileFields()) == 0
}

// CanPurchase reports whether the client may order services. Completing the
// gating profile fields is the only condition.
func (c *Client) CanPurchase() bool {
	return c.IsProfileComplete() && c.status == valueobjects.StatusActive
}

// ProfileCompletionPercentage is the progress indicator shown on the client
// dashboard. It counts postal code in addition to the gating fields, so a
// profile can sit below 100% yet still pass the purchase gate.
func (c *Client) ProfileCompletionPercentage() int {
	fields := []string{c.firstName, c.lastName, c.phone, c.address, c.city, c.postalCode}
	filled := 0
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			filled++
		}
	}
	return int(float64(filled)/float64(len(fields))*100 + 0.5)
}

// SetPriority changes the client's service priority.
func (c *Client) SetPriority(p valueobjects.ClientPriority) error {
	if !p.IsValid() {
		return errors.NewValidationError("invalid client priority", p.String())
	}
	c.priority = p
	c.updatedAt = time.Now()
	return nil
}

// SetNotes replaces the internal admin notes.
func (c *Client) SetNotes(notes string) {
	c.notes = notes
	c.updatedAt = time.Now()
}

// Suspend blocks the account. Suspended clients keep their data but cannot
// purchase or open tickets.
func (c *Client) Suspend() error {
	if c.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("cannot suspend a cancelled client")
	}
	c.status = valueobjects.StatusSuspended
	c.updatedAt = time.Now()
	return nil
}

// Activate restores a suspended account.
func (c *Client) Activate() error {
	if c.status == valueobjects.StatusCancelled {
		return errors.NewConflictError("cannot reactivate a cancelled client")
	}
	c.status = valueobjects.StatusActive
	c.updatedAt = time.Now()
	return nil
}

// Cancel closes the account permanently.
func (c *Client) Cancel() {
	c.status = valueobjects.StatusCancelled
	c.updatedAt = time.Now()
}

// IsActive reports whether the account is in good standing.
func (c *Client) IsActive() bool {
	return c.status == valueobjects.StatusActive
}

// SetCloudQuota sets the allotted cloud storage in gigabytes.
func (c *Client) SetCloudQuota(quotaGB float64) error {
	if quotaGB < 0 {
		return errors.NewValidationError("cloud quota cannot be negative")
	}
	c.cloudQuotaGB = quotaGB
	c.updatedAt = time.Now()
	return nil
}

// RecordCloudUsage stores the latest measured cloud usage. Usage above quota
// is recorded as-is; billing handles the overage.
func (c *Client) RecordCloudUsage(usedGB float64) error {
	if usedGB < 0 {
		return errors.NewValidationError("cloud usage cannot be negative")
	}
	c.cloudUsedGB = usedGB
	c.updatedAt = time.Now()
	return nil
}

// CloudUsagePercent returns usage as a percentage of quota, 0 when no quota
// is allotted.
func (c *Client) CloudUsagePercent() float64 {
	if c.cloudQuotaGB <= 0 {
		return 0
	}
	return c.cloudUsedGB / c.cloudQuotaGB * 100
}
