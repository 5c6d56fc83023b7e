package tree

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
)

// sortNodes orders by case-folded name, breaking ties on the raw name so the
// result does not depend on the input order.
func sortNodes[T Node](nodes []T) {
	if len(nodes) < 2 {
		return
	}
	folder := cases.Fold()
	keys := make(map[string]string, len(nodes))
	for _, n := range nodes {
		keys[n.Name()] = folder.String(n.Name())
	}
	slices.SortStableFunc(nodes, func(a, b T) int {
		if c := cmp.Compare(keys[a.Name()], keys[b.Name()]); c != 0 {
			return c
		}
		return cmp.Compare(a.Name(), b.Name())
	})
}
