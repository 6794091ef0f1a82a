package valueobjects

import "fmt"

// ProjectStatus represents the delivery state of a website project.
type ProjectStatus string

const (
	StatusPlanning    ProjectStatus = "planning"
	StatusDevelopment ProjectStatus = "development"
	StatusReview      ProjectStatus = "review"
	StatusLive        ProjectStatus = "live"
	StatusMaintenance ProjectStatus = "maintenance"
)

var validProjectStatuses = map[ProjectStatus]bool{
	StatusPlanning:    true,
	StatusDevelopment: true,
	StatusReview:      true,
	StatusLive:        true,
	StatusMaintenance: true,
}

// projectStatusTransitions is the delivery pipeline. Review can bounce back
// to development; live sites move in and out of maintenance.
var projectStatusTransitions = map[ProjectStatus][]ProjectStatus{
	StatusPlanning: {
		StatusDevelopment,
	},
	StatusDevelopment: {
		StatusReview,
	},
	StatusReview: {
		StatusDevelopment,
		StatusLive,
	},
	StatusLive: {
		StatusMaintenance,
	},
	StatusMaintenance: {
		StatusLive,
	},
}

func (ps ProjectStatus) String() string {
	return string(ps)
}

func (ps ProjectStatus) IsValid() bool {
	return validProjectStatuses[ps]
}

func (ps ProjectStatus) CanTransitionTo(newStatus ProjectStatus) bool {
	allowedTransitions, ok := projectStatusTransitions[ps]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (ps ProjectStatus) IsLive() bool {
	return ps == StatusLive
}

func NewProjectStatus(s string) (ProjectStatus, error) {
	ps := ProjectStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return ps, nil
}
