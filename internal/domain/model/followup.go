package model

import (
	"errors"
	"strings"
	"time"
)

// FollowUp is a scheduled follow-up linked to a customer or lead.
type FollowUp struct {
	ID           string    `json:"id"`
	LinkedID     string    `json:"linkedId"`
	Type         string    `json:"type"`
	Agent        string    `json:"agent"`
	FollowUpTime time.Time `json:"followUpTime"`
	Remarks      string    `json:"remarks"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AddFollowUpRequest carries the add-follow-up form fields.
type AddFollowUpRequest struct {
	LinkedID     string    `json:"linkedId"`
	Type         string    `json:"type"`
	Agent        string    `json:"agent"`
	FollowUpTime time.Time `json:"followUpTime"`
	Remarks      string    `json:"remarks"`
	Status       string    `json:"status"`
}

// Validate checks required fields before the actor call.
func (r AddFollowUpRequest) Validate() error {
	if strings.TrimSpace(r.LinkedID) == "" {
		return errors.New("linked record id is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return errors.New("type is required")
	}
	if strings.TrimSpace(r.Agent) == "" {
		return errors.New("agent is required")
	}
	if r.FollowUpTime.IsZero() {
		return errors.New("follow-up time is required")
	}
	return nil
}
