package types

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tracklabs/projtrack/internal/db/models"
)

// Field length bounds for project payloads.
const (
	NameMinLength        = 3
	NameMaxLength        = 100
	OwnerMaxLength       = 100
	DescriptionMaxLength = 1000
)

// ProjectRequest is the payload for creating or replacing a project. Status
// is carried as its raw string so that an unrecognized value surfaces as a
// field violation alongside any others, instead of failing the JSON decode.
type ProjectRequest struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Owner       string      `json:"owner"`
	Status      string      `json:"status"`
	StartDate   models.Date `json:"startDate"`
	EndDate     models.Date `json:"endDate"`
	Version     int         `json:"version"`
}

// Validate checks every project rule and returns the full list of
// violations, or nil when the payload is acceptable. It never stops at the
// first problem.
func (r *ProjectRequest) Validate() ValidationErrors {
	var errs ValidationErrors

	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		errs.add("name", "Project name is required.")
	case utf8.RuneCountInString(name) < NameMinLength || utf8.RuneCountInString(name) > NameMaxLength:
		errs.add("name", fmt.Sprintf("Project name must be between %d and %d characters.", NameMinLength, NameMaxLength))
	}

	owner := strings.TrimSpace(r.Owner)
	switch {
	case owner == "":
		errs.add("owner", "Owner is required.")
	case utf8.RuneCountInString(owner) > OwnerMaxLength:
		errs.add("owner", fmt.Sprintf("Owner cannot exceed %d characters.", OwnerMaxLength))
	}

	if utf8.RuneCountInString(r.Description) > DescriptionMaxLength {
		errs.add("description", fmt.Sprintf("Description cannot exceed %d characters.", DescriptionMaxLength))
	}

	if _, err := models.ParseProjectStatus(r.Status); err != nil {
		errs.add("status", "Status must be one of Planned, InProgress or Completed.")
	}

	if r.EndDate.Before(r.StartDate.Time) {
		// The violation is a property of the pair, so both fields carry it.
		const msg = "End date must be greater than or equal to start date."
		errs.add("startDate", msg)
		errs.add("endDate", msg)
	}

	return errs
}

// ToModel converts the request into the persistence model. The status
// conversion is only meaningful after Validate has passed.
func (r *ProjectRequest) ToModel() *models.Project {
	return &models.Project{
		ID:          r.ID,
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Owner:       strings.TrimSpace(r.Owner),
		Status:      models.ProjectStatus(r.Status),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Version:     r.Version,
	}
}
