// Package reconcile joins scraped vote records to roster members and reshapes
// the joined table into the persisted output schema.
package reconcile

import (
	"fmt"

	"rollcall/internal"
	"rollcall/internal/roster"
	"rollcall/internal/util"
)

// Reconcile matches every vote record to at most one roster member, tiered
// strictest-first:
//
//	tier 1: the record's scraped source id equals a member id
//	tier 2: normalized full names are equal ("Last, First" rotated first);
//	        several members sharing one normalized name is a data-quality
//	        fault — the first in roster order wins and a warning is emitted
//	tier 3: normalized raw name equals a normalized last name, accepted only
//	        when exactly one still-unmatched member carries it
//
// Every input record yields exactly one output record; records that survive
// all three tiers unmatched come back with Matched=false plus a warning.
// Tiers 1 and 2 are computed for every record before any tier-3 pass runs,
// so only tier 3 depends on input order.
func Reconcile(votes []internal.VoteRecord, idx *roster.Index) ([]internal.ReconciledRecord, []internal.Warning) {
	records := make([]internal.ReconciledRecord, len(votes))
	warnings := make([]internal.Warning, 0)

	matchedIDs := make(map[string]struct{}, len(votes))
	pending := make([]int, 0)

	for i, vote := range votes {
		if vote.SourceID != "" {
			if m, ok := idx.ByID[vote.SourceID]; ok {
				records[i] = matched(vote, m, internal.TierID)
				matchedIDs[m.ID] = struct{}{}
				continue
			}
		}

		candidates := idx.ByFullName[util.NameKey(vote.RawName)]
		if len(candidates) > 0 {
			if len(candidates) > 1 {
				warnings = append(warnings, internal.Warning{
					Kind:    internal.WarnAmbiguousMatch,
					RawName: vote.RawName,
					Message: fmt.Sprintf("%d roster members normalize to %q, keeping first in roster order (%s)", len(candidates), util.NameKey(vote.RawName), candidates[0].ID),
				})
			}
			m := candidates[0]
			records[i] = matched(vote, m, internal.TierFullName)
			matchedIDs[m.ID] = struct{}{}
			continue
		}

		pending = append(pending, i)
	}

	for _, i := range pending {
		vote := votes[i]
		var hit *internal.Member
		unique := true
		for _, m := range idx.ByLastName[util.NormalizeName(vote.RawName)] {
			if _, taken := matchedIDs[m.ID]; taken {
				continue
			}
			if hit != nil {
				unique = false
				break
			}
			candidate := m
			hit = &candidate
		}

		if hit != nil && unique {
			records[i] = matched(vote, *hit, internal.TierLastName)
			matchedIDs[hit.ID] = struct{}{}
			continue
		}

		records[i] = internal.ReconciledRecord{Vote: vote, Matched: false, Tier: internal.TierNone}
		warnings = append(warnings, internal.Warning{
			Kind:    internal.WarnUnmatchedRecord,
			RawName: vote.RawName,
			Message: fmt.Sprintf("no roster match for %q (normalized %q)", vote.RawName, util.NormalizeName(vote.RawName)),
		})
	}

	return records, warnings
}

func matched(vote internal.VoteRecord, m internal.Member, tier internal.MatchTier) internal.ReconciledRecord {
	member := m
	return internal.ReconciledRecord{Vote: vote, Member: &member, Matched: true, Tier: tier}
}
