package translate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rpattn/crmql/internal/domain"
)

const sampleUUID = "123e4567-e89b-12d3-a456-426614174000"

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestRewriteResolvedReference_RecordReferenceByID(t *testing.T) {
	info := domain.AttributeTypeInfo{AttioType: domain.AttioTypeRecordReference}

	value, ok, err := rewriteResolvedReference(info, "company", sampleUUID, "$eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a rewrite for record-reference attribute")
	}

	want := map[string]any{"record_id": map[string]any{"$eq": sampleUUID}}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("expected %v, got %v", want, value)
	}
}

func TestRewriteResolvedReference_RecordReferenceByName(t *testing.T) {
	info := domain.AttributeTypeInfo{AttioType: domain.AttioTypeRecordReference}

	value, ok, err := rewriteResolvedReference(info, "company", "Acme Inc", "$contains")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a rewrite for record-reference attribute")
	}

	want := map[string]any{"name": map[string]any{"$contains": "Acme Inc"}}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("expected %v, got %v", want, value)
	}
}

func TestRewriteResolvedReference_ActorReferenceBypassesOperator(t *testing.T) {
	info := domain.AttributeTypeInfo{AttioType: domain.AttioTypeActorReference}

	value, ok, err := rewriteResolvedReference(info, "created_by", sampleUUID, "$contains")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a rewrite for actor-reference attribute")
	}

	want := map[string]any{
		"referenced_actor_type": "workspace-member",
		"referenced_actor_id":   sampleUUID,
	}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("expected direct equality object %v, got %v", want, value)
	}
}

func TestRewriteResolvedReference_ActorReferenceRequiresUUID(t *testing.T) {
	info := domain.AttributeTypeInfo{AttioType: domain.AttioTypeActorReference}

	_, _, err := rewriteResolvedReference(info, "created_by", "not-a-uuid", "$eq")
	if err == nil {
		t.Fatalf("expected error for non-UUID actor reference value")
	}
	if !domain.IsValidationCategory(err, domain.ValidationInvalidFormat) {
		t.Errorf("expected invalid-format category, got %v", err)
	}
	verr, _ := domain.AsValidationError(err)
	if verr != nil && !containsFold(verr.Message, "uuid") {
		t.Errorf("expected message to reference the expected UUID shape, got %q", verr.Message)
	}
}

func TestRewriteResolvedReference_WorkspaceMemberRequiresEmail(t *testing.T) {
	info := domain.AttributeTypeInfo{AttioType: domain.AttioTypeWorkspaceMember}

	value, ok, err := rewriteResolvedReference(info, "workspace_member", "jordan@example.com", "$eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a rewrite for workspace-member attribute")
	}

	want := map[string]any{"email": map[string]any{"$eq": "jordan@example.com"}}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("expected %v, got %v", want, value)
	}

	if _, _, err := rewriteResolvedReference(info, "workspace_member", sampleUUID, "$eq"); err == nil {
		t.Fatalf("expected invalid-format error for non-email workspace member value")
	}
}

func TestRewriteResolvedReference_ScalarTypesPassThrough(t *testing.T) {
	for _, attioType := range []domain.AttioType{
		domain.AttioTypeText,
		domain.AttioTypeNumber,
		domain.AttioTypeSelect,
		domain.AttioTypeStatus,
	} {
		info := domain.AttributeTypeInfo{AttioType: attioType}
		_, ok, err := rewriteResolvedReference(info, "stage", "Won", "$eq")
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", attioType, err)
		}
		if ok {
			t.Errorf("expected no rewrite for %s attribute", attioType)
		}
	}
}

func TestRewriteResolvedReference_RejectsArrays(t *testing.T) {
	for _, attioType := range []domain.AttioType{
		domain.AttioTypeRecordReference,
		domain.AttioTypeActorReference,
		domain.AttioTypeWorkspaceMember,
	} {
		info := domain.AttributeTypeInfo{AttioType: attioType}
		_, _, err := rewriteResolvedReference(info, "owner", []any{sampleUUID}, "$eq")
		if err == nil {
			t.Fatalf("expected array-not-supported error for %s", attioType)
		}
		if !domain.IsValidationCategory(err, domain.ValidationArrayNotSupported) {
			t.Errorf("expected array-not-supported category for %s, got %v", attioType, err)
		}
	}
}

func TestRewriteHeuristicReference_UUIDValueNestsUnderRecordID(t *testing.T) {
	value, ok, err := rewriteHeuristicReference(DefaultReferenceSlugs(), "owner", sampleUUID, "$eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a rewrite for known reference slug")
	}

	want := map[string]any{"record_id": map[string]any{"$eq": sampleUUID}}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("expected %v, got %v", want, value)
	}
}

func TestRewriteHeuristicReference_NonUUIDValueNestsUnderName(t *testing.T) {
	value, ok, err := rewriteHeuristicReference(DefaultReferenceSlugs(), "company", "Acme Inc", "$eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a rewrite for known reference slug")
	}

	want := map[string]any{"name": map[string]any{"$eq": "Acme Inc"}}
	if !reflect.DeepEqual(value, want) {
		t.Errorf("expected %v, got %v", want, value)
	}
}

func TestRewriteHeuristicReference_WorkspaceMemberSlugsRequireEmail(t *testing.T) {
	for _, slug := range []string{"workspace_member", "assignee_id"} {
		value, ok, err := rewriteHeuristicReference(DefaultReferenceSlugs(), slug, "jordan@example.com", "$eq")
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", slug, err)
		}
		if !ok {
			t.Fatalf("expected a rewrite for %s", slug)
		}

		want := map[string]any{"email": map[string]any{"$eq": "jordan@example.com"}}
		if !reflect.DeepEqual(value, want) {
			t.Errorf("slug %s: expected %v, got %v", slug, want, value)
		}

		if _, _, err := rewriteHeuristicReference(DefaultReferenceSlugs(), slug, sampleUUID, "$eq"); err == nil {
			t.Fatalf("expected invalid-format error for non-email value on %s", slug)
		} else if !domain.IsValidationCategory(err, domain.ValidationInvalidFormat) {
			t.Errorf("expected invalid-format category for %s, got %v", slug, err)
		}
	}
}

func TestRewriteHeuristicReference_UnknownSlugsAreScalar(t *testing.T) {
	_, ok, err := rewriteHeuristicReference(DefaultReferenceSlugs(), "deal_stage", sampleUUID, "$eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected no rewrite for slug outside the reference table")
	}
}

func TestRewriteHeuristicReference_RejectsArrays(t *testing.T) {
	_, _, err := rewriteHeuristicReference(DefaultReferenceSlugs(), "owner", []string{sampleUUID}, "$eq")
	if err == nil {
		t.Fatalf("expected array-not-supported error")
	}
	if !domain.IsValidationCategory(err, domain.ValidationArrayNotSupported) {
		t.Errorf("expected array-not-supported category, got %v", err)
	}
}

func TestRewriteHeuristicReference_AlternateTable(t *testing.T) {
	table := map[string]ReferenceSlugKind{"champion": ReferenceSlugRecord}

	_, ok, err := rewriteHeuristicReference(table, "champion", "Dana", "$eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatalf("expected rewrite for slug in caller-supplied table")
	}

	_, ok, err = rewriteHeuristicReference(table, "owner", sampleUUID, "$eq")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Errorf("expected no rewrite for slug absent from caller-supplied table")
	}
}
