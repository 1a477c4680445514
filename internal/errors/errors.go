package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors. The Message is
// intentionally coarse: denial responses never explain which role was held
// versus required.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConflictError represents a state conflict, e.g. an invitation that is no
// longer pending
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "membership"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMembershipExists   = &AlreadyExistsError{Entity: "membership", Context: "for this user and organization"}
	ErrInvitationExists   = &AlreadyExistsError{Entity: "invitation", Context: "pending for this email and organization"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingUserContext = &AuthenticationError{Message: "user identity not found in request context"}
)

// Authorization Errors
var (
	ErrNotAMember           = &AuthorizationError{Message: "access denied"}
	ErrInsufficientRole     = &AuthorizationError{Message: "access denied"}
	ErrFieldPolicyViolation = &AuthorizationError{Message: "role is not allowed to modify the requested fields"}
	ErrCannotInvite         = &AuthorizationError{Message: "role is not allowed to create invitations"}
	ErrCannotGrantRole      = &AuthorizationError{Message: "role is not allowed to grant the requested role"}
	ErrOrgContextMissing    = &AuthorizationError{Message: "organization context could not be determined"}
)

// Invitation Conflict Errors
var (
	ErrInvitationNotPending = &ConflictError{Message: "invitation is no longer pending"}
	ErrInvitationExpired    = &ConflictError{Message: "invitation has expired"}
	ErrAlreadyMember        = &ConflictError{Message: "user is already a member of this organization"}
)

// Business Logic Errors
var (
	ErrInvalidRole             = errors.New("invalid role")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
