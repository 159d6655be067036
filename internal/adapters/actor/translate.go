package actor

// The actor reports domain failures as freeform prose. All string matching
// on those messages lives here, behind one translation function, so the
// known message set can be tested literally and the rest of the codebase
// only sees structured error codes.

import (
	"strings"

	apperrors "github.com/keyhaven/crm-ui-api/internal/errors"
)

// Canonical user-facing messages for the known backend failure modes.
const (
	MsgPendingApproval   = "Your registration is pending admin approval"
	MsgRejected          = "Your registration has been rejected"
	MsgFaceFailed        = "Face verification failed. Please try again."
	MsgNotApproved       = "Your account is not approved. Please contact admin."
	MsgFaceMandatory     = "Face verification is required"
	MsgMobileRegistered  = "Mobile number already registered"
	MsgActorNotAvailable = "Actor not available"
)

// translateMessage maps a backend error message to a structured AppError.
// Match order follows the original client: pending before rejected, and the
// more specific face-verification messages before the generic fallback.
func translateMessage(raw string) *apperrors.AppError {
	msg := strings.TrimSpace(raw)
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "pending approval"), strings.Contains(lower, "pending"):
		return wrap(apperrors.ErrCodeForbidden, MsgPendingApproval, msg)
	case strings.Contains(lower, "rejected"):
		return wrap(apperrors.ErrCodeForbidden, MsgRejected, msg)
	case strings.Contains(msg, "Face verification failed"):
		return wrap(apperrors.ErrCodeUnauthorized, MsgFaceFailed, msg)
	case strings.Contains(lower, "not approved"):
		return wrap(apperrors.ErrCodeForbidden, MsgNotApproved, msg)
	case strings.Contains(lower, "mandatory"):
		return wrap(apperrors.ErrCodeValidation, MsgFaceMandatory, msg)
	case strings.Contains(msg, "Mobile number already registered"):
		return wrap(apperrors.ErrCodeConflict, MsgMobileRegistered, msg)
	case strings.Contains(lower, "unauthorized"), strings.Contains(lower, "admin only"):
		return wrap(apperrors.ErrCodeForbidden, msg, msg)
	case strings.Contains(lower, "not found"):
		return wrap(apperrors.ErrCodeNotFound, msg, msg)
	default:
		// Unmatched prose surfaces verbatim, as the original client did.
		return wrap(apperrors.ErrCodeInternal, msg, msg)
	}
}

func wrap(code apperrors.ErrorCode, message, raw string) *apperrors.AppError {
	e := &apperrors.AppError{Code: code, Message: message}
	if raw != message {
		e.Cause = &apperrors.AppError{Code: code, Message: raw}
	}
	return e
}
