package metadata

import (
	"context"
	"errors"

	"github.com/rpattn/crmql/internal/domain"
)

// ErrAttributeNotFound is returned when the CRM has no attribute with
// the requested slug on the given object.
var ErrAttributeNotFound = errors.New("attribute not found")

// AttributeResolver resolves semantic type metadata for one attribute
// of a resource type. Implementations may hit the network; translation
// treats any failure as "type unknown" and falls back to heuristic
// dispatch.
type AttributeResolver interface {
	Resolve(ctx context.Context, resourceType, slug string) (domain.AttributeTypeInfo, error)
}

// AttributeLister fetches the full attribute set of an object in one
// call. Batch-oriented resolvers are built on top of this.
type AttributeLister interface {
	ListAttributes(ctx context.Context, resourceType string) (map[string]domain.AttributeTypeInfo, error)
}

// ResolverFunc adapts a function to the AttributeResolver interface.
type ResolverFunc func(ctx context.Context, resourceType, slug string) (domain.AttributeTypeInfo, error)

func (f ResolverFunc) Resolve(ctx context.Context, resourceType, slug string) (domain.AttributeTypeInfo, error) {
	return f(ctx, resourceType, slug)
}
