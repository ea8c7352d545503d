package study

import (
	"sort"

	"github.com/abhisek/recall/internal/store"
)

// SelectUnits picks up to max units to question in one session.
//
// Retired units never appear. Units below the mastered threshold form
// the primary pool, ordered by ascending mastery with creation order
// breaking ties, so the weakest knowledge is always questioned first.
// When the primary pool is smaller than max, mastered units back-fill
// the remainder: picked round-robin across source documents so review
// spreads over the material, ascending mastery within each document.
func SelectUnits(units []*store.Unit, levels map[string]float64, threshold float64, max int) []*store.Unit {
	if max <= 0 {
		return nil
	}

	var primary, mastered []*store.Unit
	for _, u := range units {
		if u.Retired {
			continue
		}
		if levels[u.ID] < threshold {
			primary = append(primary, u)
		} else {
			mastered = append(mastered, u)
		}
	}

	sortByMastery(primary, levels)

	if len(primary) >= max {
		return primary[:max]
	}

	selected := primary
	need := max - len(selected)
	selected = append(selected, backfill(mastered, levels, need)...)
	return selected
}

// sortByMastery orders units by ascending mastery, then by creation
// order so selection is deterministic across runs.
func sortByMastery(units []*store.Unit, levels map[string]float64) {
	sort.SliceStable(units, func(i, j int) bool {
		li, lj := levels[units[i].ID], levels[units[j].ID]
		if li != lj {
			return li < lj
		}
		return units[i].Position < units[j].Position
	})
}

// backfill picks up to need mastered units, one document at a time.
func backfill(mastered []*store.Unit, levels map[string]float64, need int) []*store.Unit {
	if need <= 0 || len(mastered) == 0 {
		return nil
	}

	// Group by document, preserving creation order of documents.
	var docOrder []string
	groups := make(map[string][]*store.Unit)
	for _, u := range mastered {
		if _, ok := groups[u.DocumentID]; !ok {
			docOrder = append(docOrder, u.DocumentID)
		}
		groups[u.DocumentID] = append(groups[u.DocumentID], u)
	}
	for _, docID := range docOrder {
		sortByMastery(groups[docID], levels)
	}

	var picked []*store.Unit
	for len(picked) < need {
		progressed := false
		for _, docID := range docOrder {
			if len(groups[docID]) == 0 {
				continue
			}
			picked = append(picked, groups[docID][0])
			groups[docID] = groups[docID][1:]
			progressed = true
			if len(picked) == need {
				break
			}
		}
		if !progressed {
			break
		}
	}
	return picked
}
