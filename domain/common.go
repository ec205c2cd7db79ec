package domain

import (
	"errors"
	"fmt"
)

const (
	RoleGiver = "yemek_veren"
	RoleTaker = "yemek_alan"

	FoodStatusReady = "hazir"
	FoodStatusSoon  = "yakinda"
	FoodStatusTaken = "alindi"

	FoodRequestStatusPending  = "pending"
	FoodRequestStatusAccepted = "accepted"
	FoodRequestStatusRejected = "rejected"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageAuthRequired         = "Auth required"
	MessageMissingInfo          = "Eksik bilgi"
	MessageDBError              = "DB error"

	// Error taxonomy. Feature errors wrap one of these so handlers can pick a status code.
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrStoreFailure    = errors.New("store failure")
	ErrUpstreamFailure = errors.New("upstream failure")

	ErrParseUUID    = fmt.Errorf("%w: failed to parse UUID", ErrInvalidInput)
	ErrTokenInvalid = fmt.Errorf("%w: session token invalid", ErrUnauthorized)
	ErrTokenExpired = fmt.Errorf("%w: session token expired", ErrUnauthorized)
)

// StoreFailure marks err as a persistence failure while keeping it inspectable.
func StoreFailure(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStoreFailure, err)
}

// SessionUser is the identity carried by an authenticated request.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
