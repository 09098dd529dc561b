// Package roster holds the in-memory member table for one chamber and the
// lookup index the reconciliation engine matches against.
package roster

import (
	"rollcall/internal"
	"rollcall/internal/util"
)

// Index is built once per run from a fresh roster fetch and read-only after
// that. Value slices preserve roster order, which is the documented tie-break
// for ambiguous full-name matches.
type Index struct {
	Members    []internal.Member
	ByID       map[string]internal.Member
	ByFullName map[string][]internal.Member
	ByLastName map[string][]internal.Member
}

func BuildIndex(members []internal.Member) *Index {
	idx := &Index{
		Members:    members,
		ByID:       map[string]internal.Member{},
		ByFullName: map[string][]internal.Member{},
		ByLastName: map[string][]internal.Member{},
	}

	for _, m := range members {
		if _, ok := idx.ByID[m.ID]; !ok && m.ID != "" {
			idx.ByID[m.ID] = m
		}

		nameKey := util.NameKey(m.FullName)
		if nameKey != "" {
			idx.ByFullName[nameKey] = append(idx.ByFullName[nameKey], m)
		}

		lastKey := util.NormalizeName(lastNameOf(m))
		if lastKey != "" {
			idx.ByLastName[lastKey] = append(idx.ByLastName[lastKey], m)
		}
	}

	return idx
}

// lastNameOf prefers the roster's explicit last-name field and falls back to
// the head of a combined "Last, First" display name.
func lastNameOf(m internal.Member) string {
	if m.LastName != "" {
		return m.LastName
	}
	last, _ := util.SplitDisplayName(m.FullName)
	return last
}
