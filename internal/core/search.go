package core

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/orderdeck/internal/database/repository"
)

// searchCutoff is the minimum similarity for a fuzzy match to count.
const searchCutoff = 0.4

// RankOrders returns the orders matching query, best match first. Substring
// matches on reference or customer name always qualify; otherwise the edit
// distance against the customer name decides. An empty query returns the
// snapshot unchanged.
func RankOrders(orders []repository.Order, query string) []repository.Order {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return orders
	}

	type scored struct {
		order repository.Order
		score float64
	}
	var matches []scored
	for _, o := range orders {
		ref := strings.ToUpper(o.Reference)
		name := strings.ToUpper(o.CustomerName)

		var score float64
		switch {
		case strings.Contains(ref, q) || strings.Contains(name, q):
			score = 1
		default:
			score = similarity(name, q)
		}
		if score >= searchCutoff {
			matches = append(matches, scored{o, score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]repository.Order, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.order)
	}
	return out
}

func similarity(a, b string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
