package domain

// Condition represents a user-facing filter condition.
type Condition string

const (
	ConditionEquals              Condition = "equals"
	ConditionNotEquals           Condition = "not_equals"
	ConditionContains            Condition = "contains"
	ConditionNotContains         Condition = "not_contains"
	ConditionStartsWith          Condition = "starts_with"
	ConditionEndsWith            Condition = "ends_with"
	ConditionGreaterThan         Condition = "greater_than"
	ConditionLessThan            Condition = "less_than"
	ConditionGreaterThanOrEquals Condition = "greater_than_or_equals"
	ConditionLessThanOrEquals    Condition = "less_than_or_equals"
	ConditionIsEmpty             Condition = "is_empty"
	ConditionIsNotEmpty          Condition = "is_not_empty"
	ConditionIsSet               Condition = "is_set"
	ConditionIsNotSet            Condition = "is_not_set"
)

// RelationshipSlug is the sentinel attribute slug marking a clause whose
// value is an already-composed RelationshipSpec. The leaf transformer
// passes such clauses through without rewriting.
const RelationshipSlug = "$relationship"

// AttributeRef identifies the attribute a clause targets.
type AttributeRef struct {
	Slug string `json:"slug"`
}

// FilterClause is one attribute/condition/value filter unit.
type FilterClause struct {
	Attribute AttributeRef `json:"attribute"`
	Condition Condition    `json:"condition"`
	Value     any          `json:"value"`
}

// FilterSet is a list of clauses combined with AND (default) or OR
// semantics. An empty Filters slice is valid and compiles to a no-op
// filter.
type FilterSet struct {
	Filters  []FilterClause `json:"filters"`
	MatchAny bool           `json:"matchAny,omitempty"`
}

// CompiledFilter is the nested JSON object understood by the backend
// CRM's query endpoint. It has no identity of its own and is a pure
// function of the clauses it was compiled from.
type CompiledFilter map[string]any
