package domain

// RelationshipKind names a relationship between two record types. The
// mapping from business concepts to kinds is owned by callers; this
// package only serializes the kind.
type RelationshipKind string

const (
	RelationshipWorksAt       RelationshipKind = "works_at"
	RelationshipEmploys       RelationshipKind = "employs"
	RelationshipBelongsToList RelationshipKind = "belongs_to_list"
	RelationshipHasNote       RelationshipKind = "has_note"
)

// RelationshipTarget identifies the related object type and the filter
// applied to it. Filter is an ordinary FilterSet, so relationship
// clauses nest by plain recursion.
type RelationshipTarget struct {
	Object string    `json:"object"`
	Filter FilterSet `json:"filter"`
}

// RelationshipSpec is the value carried by a $relationship clause.
type RelationshipSpec struct {
	Type   RelationshipKind   `json:"type"`
	Target RelationshipTarget `json:"target"`
}
