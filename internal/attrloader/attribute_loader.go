package attrloader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rpattn/crmql/internal/domain"
	"github.com/rpattn/crmql/internal/metadata"

	"github.com/graph-gophers/dataloader"
)

// AttributeLoader batches attribute metadata lookups. Keys arriving
// within the batching window are grouped by resource type and satisfied
// with one list-attributes call per object.
type AttributeLoader struct {
	Loader *dataloader.Loader
}

// Key builds a loader key for a (resourceType, slug) pair.
func Key(resourceType, slug string) string {
	return resourceType + "/" + slug
}

func splitKey(key string) (string, string, error) {
	resourceType, slug, ok := strings.Cut(key, "/")
	if !ok || resourceType == "" || slug == "" {
		return "", "", fmt.Errorf("invalid attribute key %q", key)
	}
	return resourceType, slug, nil
}

// NewAttributeLoader creates a loader backed by the given lister.
func NewAttributeLoader(lister metadata.AttributeLister) *AttributeLoader {
	batchFn := func(ctx context.Context, keys dataloader.Keys) []*dataloader.Result {
		results := make([]*dataloader.Result, len(keys))

		// Group key indices by resource type so each object is listed
		// once per batch.
		slugs := make([]string, len(keys))
		byType := make(map[string][]int)
		for i, k := range keys {
			resourceType, slug, err := splitKey(k.String())
			if err != nil {
				results[i] = &dataloader.Result{Error: err}
				continue
			}
			slugs[i] = slug
			byType[resourceType] = append(byType[resourceType], i)
		}

		for resourceType, indices := range byType {
			attributes, err := lister.ListAttributes(ctx, resourceType)
			if err != nil {
				for _, i := range indices {
					results[i] = &dataloader.Result{Error: err}
				}
				continue
			}

			for _, i := range indices {
				if info, ok := attributes[slugs[i]]; ok {
					results[i] = &dataloader.Result{Data: info}
				} else {
					results[i] = &dataloader.Result{
						Error: fmt.Errorf("%s.%s: %w", resourceType, slugs[i], metadata.ErrAttributeNotFound),
					}
				}
			}
		}

		return results
	}

	loader := dataloader.NewBatchedLoader(batchFn, dataloader.WithWait(5*time.Millisecond))

	return &AttributeLoader{Loader: loader}
}

// Resolve implements metadata.AttributeResolver on top of the loader.
func (l *AttributeLoader) Resolve(ctx context.Context, resourceType, slug string) (domain.AttributeTypeInfo, error) {
	thunk := l.Loader.Load(ctx, dataloader.StringKey(Key(resourceType, slug)))
	raw, err := thunk()
	if err != nil {
		return domain.AttributeTypeInfo{}, err
	}

	info, ok := raw.(domain.AttributeTypeInfo)
	if !ok {
		return domain.AttributeTypeInfo{}, fmt.Errorf("unexpected type for attribute metadata")
	}

	return info, nil
}
