package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Requirement is the property requirement a customer is shopping for.
type Requirement string

const (
	RequirementInterior           Requirement = "Interior"
	RequirementFullyFurnishedFlat Requirement = "Fully_furnished_flat"
	RequirementRent               Requirement = "Rent"
	RequirementSell               Requirement = "Sell"
	RequirementRWAFlat            Requirement = "RWA_flat"
	RequirementPurchase           Requirement = "Purchase"
	RequirementSemiFurnishedFlat  Requirement = "Semi_furnished_flat"
)

// Valid reports whether r is a known requirement variant.
func (r Requirement) Valid() bool {
	switch r {
	case RequirementInterior, RequirementFullyFurnishedFlat, RequirementRent,
		RequirementSell, RequirementRWAFlat, RequirementPurchase,
		RequirementSemiFurnishedFlat:
		return true
	}
	return false
}

// Customer is a CRM customer record owned by the remote actor.
type Customer struct {
	Name           string      `json:"name"`
	Mobile         string      `json:"mobile"`
	Email          string      `json:"email,omitempty"`
	Requirement    Requirement `json:"requirement"`
	AssignedAgent  string      `json:"assignedAgent"`
	FollowUpStatus string      `json:"followUpStatus"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// AddCustomerRequest carries the admin add-customer form fields.
type AddCustomerRequest struct {
	Name           string      `json:"name"`
	Mobile         string      `json:"mobile"`
	Email          string      `json:"email,omitempty"`
	Requirement    Requirement `json:"requirement"`
	AssignedAgent  string      `json:"assignedAgent"`
	FollowUpStatus string      `json:"followUpStatus"`
}

// Validate checks required fields before the actor call.
func (r AddCustomerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if !ValidMobile(r.Mobile) {
		return errors.New("mobile must be a 10-digit number")
	}
	if !r.Requirement.Valid() {
		return fmt.Errorf("unknown requirement %q", r.Requirement)
	}
	if strings.TrimSpace(r.AssignedAgent) == "" {
		return errors.New("assigned agent is required")
	}
	return nil
}
