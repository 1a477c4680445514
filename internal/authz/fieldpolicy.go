package authz

import (
	"taskboard-backend/internal/database/models"
	apperrors "taskboard-backend/internal/errors"
)

// viewerTaskUpdateFields is the exact set of task fields a viewer may
// change. Admins and owners are unrestricted at this layer.
var viewerTaskUpdateFields = map[string]bool{
	"status": true,
}

// CheckTaskUpdateFields applies the field-level policy for task updates. It
// runs after the guard has admitted the request and rejects the whole update
// when any present field is outside the role's allowed set; a payload is
// never partially applied. The fields argument holds the JSON names of
// user-supplied fields present in the payload, excluding anything the guard
// injected.
func CheckTaskUpdateFields(role models.OrgRole, fields []string) error {
	if role != models.RoleViewer {
		return nil
	}

	for _, field := range fields {
		if !viewerTaskUpdateFields[field] {
			return apperrors.ErrFieldPolicyViolation
		}
	}
	return nil
}
