package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/jask/orderdeck/internal/database/repository"
)

func demoID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

// SeedDemo populates an empty database with a handful of sample orders and
// product media so the console has something to show on first run. It is
// idempotent and safe to run on every startup.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	orderRepo := repository.NewOrderRepo(db)
	existing, err := orderRepo.List(ctx, repository.OrderFilters{Limit: 1})
	if err == nil && len(existing) > 0 {
		return nil
	}

	type line struct {
		product string
		variant string
		title   string
		qty     int
		price   int64
	}
	demos := []struct {
		reference string
		customer  string
		email     string
		stage     string
		packed    bool
		shipped   bool
		carrier   string
		items     []line
	}{
		{"ORD-1001", "Ada Byron", "ada@example.com", "new", false, false, "AusPost",
			[]line{{"prod-espresso", "var-espresso-250g", "Espresso Blend 250g", 2, 1450}}},
		{"ORD-1002", "Grace Hopper", "grace@example.com", "processing", true, false, "DHL",
			[]line{{"prod-grinder", "var-grinder-black", "Burr Grinder (Black)", 1, 8900}}},
		{"ORD-1003", "Alan Kay", "alan@example.com", "processing", true, true, "DHL",
			[]line{{"prod-espresso", "var-espresso-1kg", "Espresso Blend 1kg", 1, 4200},
				{"prod-mug", "var-mug-white", "Stoneware Mug", 4, 1200}}},
		{"ORD-1004", "Barbara Liskov", "barbara@example.com", "new", false, false, "AusPost",
			[]line{{"prod-mug", "var-mug-blue", "Stoneware Mug (Blue)", 2, 1200}}},
	}

	for _, d := range demos {
		var total int64
		var items []repository.OrderItem
		oid := demoID("order", d.reference)
		for _, it := range d.items {
			total += it.price * int64(it.qty)
			items = append(items, repository.OrderItem{
				ID:         demoID("item", d.reference+":"+it.variant),
				OrderID:    oid,
				ProductID:  it.product,
				VariantID:  it.variant,
				Title:      it.title,
				Quantity:   it.qty,
				PriceCents: it.price,
			})
		}
		o := repository.Order{
			ID:           oid,
			Reference:    d.reference,
			CustomerName: d.customer,
			Email:        d.email,
			Stage:        d.stage,
			TotalCents:   total,
			Shipping: []repository.Shipment{{
				ID:      demoID("shipment", d.reference),
				OrderID: oid,
				Carrier: d.carrier,
				Packed:  d.packed,
				Shipped: d.shipped,
			}},
			Items: items,
		}
		if err := orderRepo.Insert(ctx, o); err != nil {
			return err
		}
	}

	mediaRepo := repository.NewMediaRepo(db)
	variant := func(s string) *string { return &s }
	media := []repository.MediaRecord{
		{ID: demoID("media", "espresso-default"), ProductID: "prod-espresso", Priority: 0, URL: "https://cdn.example.com/espresso.jpg"},
		{ID: demoID("media", "espresso-1kg"), ProductID: "prod-espresso", VariantID: variant("var-espresso-1kg"), Priority: 1, URL: "https://cdn.example.com/espresso-1kg.jpg"},
		{ID: demoID("media", "grinder-default"), ProductID: "prod-grinder", Priority: 0, URL: "https://cdn.example.com/grinder.jpg"},
		{ID: demoID("media", "mug-blue"), ProductID: "prod-mug", VariantID: variant("var-mug-blue"), Priority: 1, URL: "https://cdn.example.com/mug-blue.jpg"},
	}
	for _, m := range media {
		if err := mediaRepo.Insert(ctx, m); err != nil {
			return err
		}
	}
	return nil
}
