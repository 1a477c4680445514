package authz

// sourceKind tags how the guard determines the organization a request
// targets.
type sourceKind int

const (
	sourceParam sourceKind = iota
	sourceQuery
	sourceBody
	sourceTask
	sourceInvitation
)

// OrgSource describes where the target organization id of a route comes
// from. For resource-identified routes the id is read from the stored
// resource row, never from the client, so a caller cannot claim a foreign
// resource belongs to an organization they control.
type OrgSource struct {
	kind sourceKind
	name string
}

// OrgFromParam reads the organization id from a route parameter.
func OrgFromParam(name string) OrgSource {
	return OrgSource{kind: sourceParam, name: name}
}

// OrgFromQuery reads the organization id from a query parameter.
func OrgFromQuery(name string) OrgSource {
	return OrgSource{kind: sourceQuery, name: name}
}

// OrgFromBody reads the organization id from a JSON body field. The body is
// restored afterwards so the handler can still bind it.
func OrgFromBody(field string) OrgSource {
	return OrgSource{kind: sourceBody, name: field}
}

// OrgFromTask resolves the task named by the route parameter, including
// soft-deleted rows, and uses its stored organization id.
func OrgFromTask(param string) OrgSource {
	return OrgSource{kind: sourceTask, name: param}
}

// OrgFromInvitation resolves the invitation named by the route parameter and
// uses its stored organization id.
func OrgFromInvitation(param string) OrgSource {
	return OrgSource{kind: sourceInvitation, name: param}
}
