// Package summary deduplicates reconciled vote records and tallies outcomes
// by party and by choice.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"rollcall/internal"
)

// Order partisan rows are reported in. Unrecognized choices land at the end.
var choiceOrder = []internal.Choice{
	internal.ChoiceYea,
	internal.ChoiceNay,
	internal.ChoicePresent,
	internal.ChoiceNotVoting,
	internal.ChoiceUnknown,
}

// Summarize deduplicates records by member id (raw name stands in as the key
// for unmatched records), keeping the first occurrence of each key, then
// tallies per-party, per-choice and per (party, choice) counts.
//
// The prevailing side is whichever of Yea/Nay has the larger count; an exact
// tie goes to Nay, the status-quo-preserving outcome. When neither side
// received a vote no side prevails.
//
// A deduplicated total different from expectedTotal produces a CountMismatch
// warning carrying the occurrence counts of any key seen more than once; it
// never fails the summary. Summarize never fails on empty input either — all
// counts come back zero.
func Summarize(records []internal.ReconciledRecord, expectedTotal int) internal.Summary {
	s := internal.Summary{
		PartyCounts:  map[internal.Party]int{},
		ChoiceCounts: map[internal.Choice]int{},
	}

	occurrences := map[string]int{}
	order := make([]string, 0, len(records))
	deduped := make([]internal.ReconciledRecord, 0, len(records))
	for _, rec := range records {
		key := dedupKey(rec)
		occurrences[key]++
		if occurrences[key] > 1 {
			continue
		}
		order = append(order, key)
		deduped = append(deduped, rec)
	}

	partisan := map[internal.Choice]map[internal.Party]int{}
	for _, rec := range deduped {
		party := internal.PartyUnknown
		if rec.Member != nil {
			party = rec.Member.Party
		}
		s.PartyCounts[party]++
		s.ChoiceCounts[rec.Vote.Choice]++
		if partisan[rec.Vote.Choice] == nil {
			partisan[rec.Vote.Choice] = map[internal.Party]int{}
		}
		partisan[rec.Vote.Choice][party]++
	}
	s.Total = len(deduped)
	s.Partisan = partisanRows(partisan)

	yea := s.ChoiceCounts[internal.ChoiceYea]
	nay := s.ChoiceCounts[internal.ChoiceNay]
	switch {
	case yea > nay:
		s.Prevailing = internal.ChoiceYea
	case yea > 0 || nay > 0:
		s.Prevailing = internal.ChoiceNay
	}

	if expectedTotal > 0 && s.Total != expectedTotal {
		s.Warnings = append(s.Warnings, internal.Warning{
			Kind:    internal.WarnCountMismatch,
			Message: fmt.Sprintf("deduplicated member count %d, expected %d%s", s.Total, expectedTotal, duplicateDetail(order, occurrences)),
		})
	}

	return s
}

func dedupKey(rec internal.ReconciledRecord) string {
	if rec.Member != nil && rec.Member.ID != "" {
		return rec.Member.ID
	}
	return "raw:" + rec.Vote.RawName
}

func duplicateDetail(order []string, occurrences map[string]int) string {
	parts := make([]string, 0)
	for _, key := range order {
		if n := occurrences[key]; n > 1 {
			parts = append(parts, fmt.Sprintf("%s=%d", key, n))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "; duplicate keys: " + strings.Join(parts, ", ")
}

func partisanRows(partisan map[internal.Choice]map[internal.Party]int) []internal.PartisanRow {
	rows := make([]internal.PartisanRow, 0, len(partisan))
	for _, choice := range choiceOrder {
		counts, ok := partisan[choice]
		if !ok {
			continue
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		rows = append(rows, internal.PartisanRow{Choice: choice, Counts: counts, Total: total})
	}
	return rows
}

// RenderText is the console rendering of a summary, one fact per line.
func RenderText(s internal.Summary) string {
	var b strings.Builder
	b.WriteString("Vote Summary:\n")
	fmt.Fprintf(&b, "  Total members: %d\n", s.Total)
	fmt.Fprintf(&b, "  Democrats (D): %d\n", s.PartyCounts[internal.PartyDemocratic])
	fmt.Fprintf(&b, "  Republicans (R): %d\n", s.PartyCounts[internal.PartyRepublican])
	fmt.Fprintf(&b, "  Independents (I): %d\n", s.PartyCounts[internal.PartyIndependent])
	fmt.Fprintf(&b, "  Yea votes: %d\n", s.ChoiceCounts[internal.ChoiceYea])
	fmt.Fprintf(&b, "  Nay votes: %d\n", s.ChoiceCounts[internal.ChoiceNay])
	fmt.Fprintf(&b, "  Not Voting: %d\n", s.ChoiceCounts[internal.ChoiceNotVoting])
	if s.Prevailing != internal.ChoiceUnknown {
		fmt.Fprintf(&b, "  Prevailing side: %s\n", s.Prevailing)
	}
	return b.String()
}

// SortedParties returns the party columns present in the summary in a stable
// D, R, I, other order for table rendering.
func SortedParties(s internal.Summary) []internal.Party {
	known := []internal.Party{internal.PartyDemocratic, internal.PartyRepublican, internal.PartyIndependent}
	out := make([]internal.Party, 0, len(known))
	seen := map[internal.Party]struct{}{}
	for _, p := range known {
		out = append(out, p)
		seen[p] = struct{}{}
	}
	extra := make([]string, 0)
	for p := range s.PartyCounts {
		if _, ok := seen[p]; !ok {
			extra = append(extra, string(p))
		}
	}
	sort.Strings(extra)
	for _, p := range extra {
		out = append(out, internal.Party(p))
	}
	return out
}
