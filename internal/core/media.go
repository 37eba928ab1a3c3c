package core

import (
	"context"

	"github.com/jask/orderdeck/internal/database/repository"
)

// LineItem is the lookup key for media resolution.
type LineItem struct {
	ProductID string
	VariantID string
}

// MediaResolver picks the best display image for a line item. A
// variant-specific record always wins over the product-level default; the
// only fallback tier beyond that is the product's priority-0 image.
type MediaResolver struct {
	finder MediaFinder
}

func NewMediaResolver(finder MediaFinder) *MediaResolver {
	return &MediaResolver{finder: finder}
}

// Resolve returns the matching media record, or nil when the item has no
// media. Lookup errors are absorbed into the nil sentinel; resolution never
// fails.
func (r *MediaResolver) Resolve(ctx context.Context, item LineItem) *repository.MediaRecord {
	variantID := item.VariantID
	rec, err := r.finder.FindOne(ctx, repository.MediaQuery{
		ProductID: item.ProductID,
		VariantID: &variantID,
	})
	if err == nil && rec != nil {
		return rec
	}

	priority := 0
	rec, err = r.finder.FindOne(ctx, repository.MediaQuery{
		ProductID: item.ProductID,
		Priority:  &priority,
	})
	if err == nil && rec != nil {
		return rec
	}
	return nil
}
