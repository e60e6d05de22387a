package models

import (
	"fmt"
	"time"
)

// ProjectStatus is the lifecycle tag of a project. It is serialized as its
// symbolic name on every boundary: JSON bodies, the status query filter and
// the database column. There is no enforced transition graph; any status may
// follow any other.
type ProjectStatus string

const (
	StatusPlanned    ProjectStatus = "Planned"
	StatusInProgress ProjectStatus = "InProgress"
	StatusCompleted  ProjectStatus = "Completed"
)

// ProjectStatuses lists every valid status value, in lifecycle order.
var ProjectStatuses = []ProjectStatus{StatusPlanned, StatusInProgress, StatusCompleted}

func (s ProjectStatus) String() string {
	return string(s)
}

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseProjectStatus converts a symbolic status name to a ProjectStatus.
// Unrecognized names are an error, never a default value.
func ParseProjectStatus(str string) (ProjectStatus, error) {
	s := ProjectStatus(str)
	if !s.Valid() {
		return "", fmt.Errorf("invalid project status: %q", str)
	}
	return s, nil
}

// Project is the tracked entity. The id is assigned by the store on insert
// and immutable thereafter. Version is the optimistic concurrency token: it
// starts at 1 and advances on every successful replace, so a writer holding
// a stale version is rejected instead of silently overwriting.
type Project struct {
	ID          uint          `json:"id" gorm:"primaryKey"`
	Name        string        `json:"name" gorm:"not null;index;size:100"`
	Description string        `json:"description,omitempty" gorm:"type:text"`
	Owner       string        `json:"owner" gorm:"not null;size:100"`
	Status      ProjectStatus `json:"status" gorm:"not null;index;size:20"`
	StartDate   Date          `json:"startDate" gorm:"type:date"`
	EndDate     Date          `json:"endDate" gorm:"type:date"`
	Version     int           `json:"version" gorm:"not null;default:1"`
	CreatedAt   time.Time     `json:"-"`
	UpdatedAt   time.Time     `json:"-"`
}
