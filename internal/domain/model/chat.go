package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ParticipantKind discriminates the ChatParticipant tagged union.
type ParticipantKind string

const (
	ParticipantAgent    ParticipantKind = "agent"
	ParticipantCustomer ParticipantKind = "customer"
	ParticipantLead     ParticipantKind = "lead"
)

// ChatParticipant identifies the counterparty of a message or call: an
// agent, customer, or lead mobile number tagged by kind.
type ChatParticipant struct {
	Kind   ParticipantKind `json:"kind"`
	Mobile string          `json:"mobile"`
}

// Validate checks the participant tag and identifier.
func (p ChatParticipant) Validate() error {
	switch p.Kind {
	case ParticipantAgent, ParticipantCustomer, ParticipantLead:
	default:
		return fmt.Errorf("unknown participant kind %q", p.Kind)
	}
	if strings.TrimSpace(p.Mobile) == "" {
		return errors.New("participant mobile is required")
	}
	return nil
}

// MessageDirection distinguishes sent from received WhatsApp messages.
type MessageDirection string

const (
	DirectionSent     MessageDirection = "sent"
	DirectionReceived MessageDirection = "received"
)

// MessageStatus is the delivery state of a WhatsApp message.
type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "pending"
	MessageStatusRead      MessageStatus = "read"
	MessageStatusDelivered MessageStatus = "delivered"
)

// WhatsAppMessage is a logged WhatsApp conversation entry.
type WhatsAppMessage struct {
	ID          string           `json:"id"`
	Participant ChatParticipant  `json:"participant"`
	Content     string           `json:"content"`
	Direction   MessageDirection `json:"direction"`
	MessageType string           `json:"messageType"`
	Status      MessageStatus    `json:"status"`
	Timestamp   time.Time        `json:"timestamp"`
}

// AddWhatsAppMessageRequest carries a message log entry.
type AddWhatsAppMessageRequest struct {
	Participant ChatParticipant  `json:"participant"`
	Content     string           `json:"content"`
	Direction   MessageDirection `json:"direction"`
	MessageType string           `json:"messageType"`
	Status      MessageStatus    `json:"status"`
}

// Validate checks the message log fields.
func (r AddWhatsAppMessageRequest) Validate() error {
	if err := r.Participant.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	if r.Direction != DirectionSent && r.Direction != DirectionReceived {
		return fmt.Errorf("unknown message direction %q", r.Direction)
	}
	return nil
}

// CallLog is a logged phone call with a customer, lead, or agent.
type CallLog struct {
	ID          string          `json:"id"`
	Participant ChatParticipant `json:"participant"`
	Duration    time.Duration   `json:"duration"`
	CallType    string          `json:"callType"`
	Timestamp   time.Time       `json:"timestamp"`
}

// AddCallLogRequest carries a call log entry.
type AddCallLogRequest struct {
	Participant ChatParticipant `json:"participant"`
	Duration    time.Duration   `json:"duration"`
	CallType    string          `json:"callType"`
}

// Validate checks the call log fields.
func (r AddCallLogRequest) Validate() error {
	if err := r.Participant.Validate(); err != nil {
		return err
	}
	if r.Duration < 0 {
		return errors.New("duration cannot be negative")
	}
	if strings.TrimSpace(r.CallType) == "" {
		return errors.New("call type is required")
	}
	return nil
}
