package translate

import (
	"context"

	"github.com/rpattn/crmql/internal/domain"
	"github.com/rpattn/crmql/internal/metadata"
)

// Translator compiles user-facing filter sets into the backend CRM's
// nested query format. It holds no per-call state and is safe for
// concurrent use.
type Translator struct {
	resolver       metadata.AttributeResolver
	referenceSlugs map[string]ReferenceSlugKind
}

// Option customizes a Translator.
type Option func(*Translator)

// WithReferenceSlugs replaces the built-in heuristic slug table.
func WithReferenceSlugs(slugs map[string]ReferenceSlugKind) Option {
	return func(t *Translator) {
		t.referenceSlugs = slugs
	}
}

// NewTranslator creates a Translator. The resolver may be nil, in which
// case every clause is dispatched heuristically.
func NewTranslator(resolver metadata.AttributeResolver, opts ...Option) *Translator {
	t := &Translator{
		resolver:       resolver,
		referenceSlugs: DefaultReferenceSlugs(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TransformOptions controls one filter set translation.
type TransformOptions struct {
	// ResourceType enables metadata-backed dispatch when non-empty.
	ResourceType string
	// ValidateConditions rejects unknown conditions. When false, an
	// unknown condition passes through as a "$"-prefixed operator.
	ValidateConditions bool
	// LegacyMode emits shorthand equality ({slug: value}) for scalar
	// equals clauses, matching the older query grammar.
	LegacyMode bool
}

// TransformSingleFilter compiles one clause into its JSON fragment,
// keyed by attribute slug. Conditions are always validated on this
// path.
func (t *Translator) TransformSingleFilter(ctx context.Context, clause domain.FilterClause, resourceType string) (map[string]any, error) {
	return t.transformClause(ctx, clause, TransformOptions{
		ResourceType:       resourceType,
		ValidateConditions: true,
	})
}

// TransformFilters compiles a filter set into the backend query format.
// Clauses with a missing slug are dropped; all other validation
// failures abort the whole translation.
func (t *Translator) TransformFilters(ctx context.Context, set *domain.FilterSet, opts TransformOptions) (domain.CompiledFilter, error) {
	if set == nil {
		return nil, domain.NewValidationError(domain.ValidationInvalidStructure,
			"filter set is required")
	}

	fragments := make([]map[string]any, 0, len(set.Filters))
	for _, clause := range set.Filters {
		if clause.Attribute.Slug == "" {
			// Recoverable per-clause defect: skip rather than abort.
			continue
		}

		fragment, err := t.transformClause(ctx, clause, opts)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}

	return ComposeFragments(fragments, set.MatchAny), nil
}

func (t *Translator) transformClause(ctx context.Context, clause domain.FilterClause, opts TransformOptions) (map[string]any, error) {
	slug := clause.Attribute.Slug
	if slug == "" {
		return nil, domain.NewValidationError(domain.ValidationInvalidStructure,
			"filter clause is missing an attribute slug")
	}

	// Relationship clauses are already in final shape; pass the value
	// through untouched.
	if slug == domain.RelationshipSlug {
		return map[string]any{slug: clause.Value}, nil
	}

	op, err := t.operatorFor(clause.Condition, opts.ValidateConditions)
	if err != nil {
		return nil, err
	}

	rewritten, ok, err := t.rewriteReference(ctx, slug, clause.Value, op, opts.ResourceType)
	if err != nil {
		return nil, err
	}
	if ok {
		return map[string]any{slug: rewritten}, nil
	}

	if opts.LegacyMode && clause.Condition == domain.ConditionEquals {
		return map[string]any{slug: clause.Value}, nil
	}

	return map[string]any{slug: map[string]any{op: clause.Value}}, nil
}

func (t *Translator) operatorFor(condition domain.Condition, validate bool) (string, error) {
	if validate {
		return OperatorFor(condition)
	}
	if op, ok := conditionOperators[condition]; ok {
		return op, nil
	}
	return "$" + string(condition), nil
}

// rewriteReference picks the dispatch path: metadata-backed when a
// resource type is known and resolution succeeds, heuristic otherwise.
func (t *Translator) rewriteReference(ctx context.Context, slug string, value any, op, resourceType string) (any, bool, error) {
	if resourceType != "" && t.resolver != nil {
		info, err := t.resolver.Resolve(ctx, resourceType, slug)
		if err == nil {
			return rewriteResolvedReference(info, slug, value, op)
		}
		// Resolution failure means "type unknown": fall through to the
		// heuristic table, which still enforces the fatal shape rules.
	}
	return rewriteHeuristicReference(t.referenceSlugs, slug, value, op)
}

// ComposeFragments merges per-clause fragments under AND or OR
// semantics. AND merges fragments into one object keyed by slug, last
// write winning on slug collisions; OR preserves clause order under
// $or. Empty input yields an empty filter, never an error.
func ComposeFragments(fragments []map[string]any, matchAny bool) domain.CompiledFilter {
	if matchAny {
		clauses := make([]any, 0, len(fragments))
		for _, fragment := range fragments {
			clauses = append(clauses, fragment)
		}
		return domain.CompiledFilter{"$or": clauses}
	}

	merged := domain.CompiledFilter{}
	for _, fragment := range fragments {
		for slug, value := range fragment {
			merged[slug] = value
		}
	}
	return merged
}
