package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "task"}
		assert.Equal(t, "task not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "task"}
		err2 := &NotFoundError{Entity: "task"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "task"}
		err2 := &NotFoundError{Entity: "organization"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTaskNotFound, ErrTaskNotFound))
		assert.False(t, errors.Is(ErrTaskNotFound, ErrOrganizationNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get task: %w", ErrTaskNotFound)
		assert.True(t, errors.Is(wrapped, ErrTaskNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTaskNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrMembershipNotFound)))
		assert.False(t, IsNotFound(ErrAlreadyMember))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "membership", Context: "for this user and organization"}
		assert.Equal(t, "membership already exists for this user and organization", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "membership"}
		assert.Equal(t, "membership already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "membership", Context: "a"}
		err2 := &AlreadyExistsError{Entity: "membership", Context: "b"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrMembershipExists))
		assert.False(t, IsAlreadyExists(ErrMembershipNotFound))
	})
}

func TestAuthorizationError(t *testing.T) {
	t.Run("NotAMember and InsufficientRole are indistinguishable", func(t *testing.T) {
		// Both surface the same coarse message so a probing caller cannot
		// tell "not in this org" apart from "in this org but underprivileged".
		assert.Equal(t, ErrNotAMember.Error(), ErrInsufficientRole.Error())
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotAMember))
		assert.True(t, IsAuthorization(ErrFieldPolicyViolation))
		assert.True(t, IsAuthorization(fmt.Errorf("wrapped: %w", ErrCannotGrantRole)))
		assert.False(t, IsAuthorization(ErrInvalidToken))
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrNotAMember))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrAlreadyMember))
		assert.True(t, IsConflict(ErrInvitationNotPending))
		assert.False(t, IsConflict(ErrInvitationNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "role", Message: "must be one of owner, admin, viewer"}
		assert.Equal(t, "validation error: role - must be one of owner, admin, viewer", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("role", "invalid")))
		assert.False(t, IsValidation(ErrInvalidRole))
	})
}
