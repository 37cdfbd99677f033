package translate

import (
	"github.com/rpattn/crmql/internal/domain"
)

// ReferenceSlugKind classifies entries in the well-known reference slug
// table used by heuristic dispatch.
type ReferenceSlugKind string

const (
	// ReferenceSlugRecord marks slugs that point at another record; the
	// value shape decides between record_id and name nesting.
	ReferenceSlugRecord ReferenceSlugKind = "record"
	// ReferenceSlugWorkspaceMember marks slugs that identify a workspace
	// member; the value must be an email address.
	ReferenceSlugWorkspaceMember ReferenceSlugKind = "workspace-member"
)

// DefaultReferenceSlugs returns the built-in table of slugs that are
// reference-shaped on every known CRM object. Callers may supply an
// alternate table via WithReferenceSlugs.
func DefaultReferenceSlugs() map[string]ReferenceSlugKind {
	return map[string]ReferenceSlugKind{
		"owner":            ReferenceSlugRecord,
		"assignee":         ReferenceSlugRecord,
		"company":          ReferenceSlugRecord,
		"person":           ReferenceSlugRecord,
		"primary_contact":  ReferenceSlugRecord,
		"created_by":       ReferenceSlugRecord,
		"workspace_member": ReferenceSlugWorkspaceMember,
		"assignee_id":      ReferenceSlugWorkspaceMember,
	}
}

// rewriteResolvedReference rewrites a clause value using resolved
// attribute metadata. It returns the finished nested value and true
// when the attribute is a reference kind, or false when the default
// scalar path applies.
func rewriteResolvedReference(info domain.AttributeTypeInfo, slug string, value any, op string) (any, bool, error) {
	if !info.AttioType.IsReference() {
		return nil, false, nil
	}

	if isArrayValue(value) {
		return nil, false, domain.NewValidationError(domain.ValidationArrayNotSupported,
			"reference attribute %q does not accept multiple values", slug)
	}

	switch info.AttioType {
	case domain.AttioTypeRecordReference:
		if isUUIDShaped(value) {
			return map[string]any{"record_id": map[string]any{op: value}}, true, nil
		}
		return map[string]any{"name": map[string]any{op: value}}, true, nil

	case domain.AttioTypeActorReference:
		// Actor references are matched by direct equality on the actor
		// id; the condition operator does not apply.
		if !isUUIDShaped(value) {
			return nil, false, domain.NewValidationError(domain.ValidationInvalidFormat,
				"attribute %q references an actor and requires a UUID value, got %v", slug, value)
		}
		return map[string]any{
			"referenced_actor_type": "workspace-member",
			"referenced_actor_id":   value,
		}, true, nil

	case domain.AttioTypeWorkspaceMember:
		if !isEmailShaped(value) {
			return nil, false, domain.NewValidationError(domain.ValidationInvalidFormat,
				"attribute %q identifies a workspace member and requires an email address, got %v", slug, value)
		}
		return map[string]any{"email": map[string]any{op: value}}, true, nil
	}

	return nil, false, nil
}

// rewriteHeuristicReference rewrites a clause value without attribute
// metadata, using the well-known slug table and the shape of the value.
// Slugs absent from the table keep the default scalar path.
func rewriteHeuristicReference(slugs map[string]ReferenceSlugKind, slug string, value any, op string) (any, bool, error) {
	kind, ok := slugs[slug]
	if !ok {
		return nil, false, nil
	}

	if isArrayValue(value) {
		return nil, false, domain.NewValidationError(domain.ValidationArrayNotSupported,
			"reference attribute %q does not accept multiple values", slug)
	}

	if kind == ReferenceSlugWorkspaceMember {
		// Workspace-member identity slugs require an email regardless of
		// resolution outcome.
		if !isEmailShaped(value) {
			return nil, false, domain.NewValidationError(domain.ValidationInvalidFormat,
				"attribute %q identifies a workspace member and requires an email address, got %v", slug, value)
		}
		return map[string]any{"email": map[string]any{op: value}}, true, nil
	}

	if isUUIDShaped(value) {
		return map[string]any{"record_id": map[string]any{op: value}}, true, nil
	}
	return map[string]any{"name": map[string]any{op: value}}, true, nil
}
