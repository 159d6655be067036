package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// LeadStatus tracks a lead through the sales funnel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusGoingOn   LeadStatus = "going_on"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
)

// Valid reports whether s is a known lead status.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusGoingOn, LeadStatusConverted, LeadStatusLost:
		return true
	}
	return false
}

// LeadRequirement mirrors Requirement for leads; the actor keeps the two
// enumerations separate on the wire.
type LeadRequirement string

const (
	LeadRequirementFullyFurnishedFlat LeadRequirement = "Fully_furnished_flat"
	LeadRequirementRWAFlat            LeadRequirement = "RWA_flat"
	LeadRequirementSemiFurnishedFlat  LeadRequirement = "Semi_furnished_flat"
)

// Valid reports whether r is a known lead requirement variant.
func (r LeadRequirement) Valid() bool {
	switch r {
	case LeadRequirementFullyFurnishedFlat, LeadRequirementRWAFlat, LeadRequirementSemiFurnishedFlat:
		return true
	}
	return false
}

// Lead is a CRM lead record owned by the remote actor.
type Lead struct {
	Name             string          `json:"name"`
	Mobile           string          `json:"mobile"`
	Email            string          `json:"email,omitempty"`
	Status           LeadStatus      `json:"status"`
	Requirement      LeadRequirement `json:"requirement"`
	AssignedAgent    string          `json:"assignedAgent"`
	Description      string          `json:"description"`
	Remarks          string          `json:"remarks,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
	RemarksTimestamp *time.Time      `json:"remarksTimestamp,omitempty"`
}

// AddLeadRequest carries the add-lead form fields.
type AddLeadRequest struct {
	Name          string          `json:"name"`
	Mobile        string          `json:"mobile"`
	Email         string          `json:"email,omitempty"`
	Status        LeadStatus      `json:"status"`
	Requirement   LeadRequirement `json:"requirement"`
	AssignedAgent string          `json:"assignedAgent"`
	Description   string          `json:"description"`
	Remarks       string          `json:"remarks,omitempty"`
}

// Validate checks required fields before the actor call.
func (r AddLeadRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if !ValidMobile(r.Mobile) {
		return errors.New("mobile must be a 10-digit number")
	}
	if !r.Status.Valid() {
		return fmt.Errorf("unknown lead status %q", r.Status)
	}
	if !r.Requirement.Valid() {
		return fmt.Errorf("unknown lead requirement %q", r.Requirement)
	}
	if strings.TrimSpace(r.AssignedAgent) == "" {
		return errors.New("assigned agent is required")
	}
	return nil
}
