package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/keyhaven/crm-ui-api/internal/domain/approval"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// UserProfile is the one-time profile record saved after first sign-in.
type UserProfile struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}

// Validate checks the profile fields required by the setup form.
func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		return errors.New("email is required")
	}
	if !mobilePattern.MatchString(p.Mobile) {
		return errors.New("mobile must be a 10-digit number")
	}
	return nil
}

// AgentProfile is the actor's record for a registered agent. The actor only
// returns it for callers that are approved and face-logged-in; its presence
// therefore doubles as the face-login signal for the access gate.
type AgentProfile struct {
	Principal      string          `json:"principal"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Mobile         string          `json:"mobile"`
	Status         approval.Status `json:"status"`
	FaceEmbeddings []byte          `json:"faceEmbeddings,omitempty"`
}

// ApprovalInfo pairs a registered principal with its approval status, as
// returned by the actor's approval listing.
type ApprovalInfo struct {
	Principal string          `json:"principal"`
	Status    approval.Status `json:"status"`
}

// AgentActivity is one row of the actor's login-times report: the agent's
// mobile, the last face-login time, and whether the session is still live.
type AgentActivity struct {
	Mobile        string    `json:"mobile"`
	LastLoginTime time.Time `json:"lastLoginTime"`
	IsActive      bool      `json:"isActive"`
}

// RegisterAgentRequest carries the agent registration form fields. The face
// image is an opaque byte payload captured client-side; this service never
// interprets it.
type RegisterAgentRequest struct {
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	FaceImage []byte `json:"faceImage"`
}

// Validate enforces the client-side mandatory checks before any actor call.
func (r RegisterAgentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if !mobilePattern.MatchString(r.Mobile) {
		return errors.New("mobile must be a 10-digit number")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if len(r.FaceImage) == 0 {
		return errors.New("face capture is mandatory")
	}
	return nil
}

// ValidMobile reports whether s looks like an agent mobile number.
func ValidMobile(s string) bool { return mobilePattern.MatchString(s) }
