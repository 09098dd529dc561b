package internal

import "strings"

type Chamber string

const (
	ChamberSenate Chamber = "senate"
	ChamberHouse  Chamber = "house"
)

type Party string

const (
	PartyDemocratic  Party = "D"
	PartyRepublican  Party = "R"
	PartyIndependent Party = "I"
	PartyUnknown     Party = ""
)

// ParseParty maps a scraped party label ("D", "Democratic", ...) to its
// single-letter code.
func ParseParty(raw string) Party {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PartyUnknown
	}
	switch strings.ToUpper(s[:1]) {
	case "D":
		return PartyDemocratic
	case "R":
		return PartyRepublican
	case "I":
		return PartyIndependent
	}
	return PartyUnknown
}

type Choice string

const (
	ChoiceYea       Choice = "Yea"
	ChoiceNay       Choice = "Nay"
	ChoicePresent   Choice = "Present"
	ChoiceNotVoting Choice = "Not Voting"
	ChoiceUnknown   Choice = ""
)

// ParseChoice folds the chamber-specific vote labels into canonical choices.
// The House uses Aye/No on some vote types, the Senate uses Yea/Nay.
func ParseChoice(raw string) Choice {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yea", "aye":
		return ChoiceYea
	case "nay", "no":
		return ChoiceNay
	case "present":
		return ChoicePresent
	case "not voting":
		return ChoiceNotVoting
	}
	return ChoiceUnknown
}

// Member is one roster entry. IDs are unique within a roster snapshot.
// Lower-chamber rosters carry a District; the upper chamber leaves it empty.
// Some rosters only provide a combined "Last, First" display name, in which
// case LastName and FirstName stay empty until output formatting.
type Member struct {
	ID        string
	FullName  string
	LastName  string
	FirstName string
	Party     Party
	State     string
	District  string
}

// VoteRecord is one scraped row of a roll-call vote page. RawName is kept
// exactly as scraped (it may carry party/state annotations). SourceID is the
// member identifier scraped from the vote page itself, when the chamber
// provides one.
type VoteRecord struct {
	RawName   string
	RawChoice string
	Choice    Choice
	SourceID  string
}

type MatchTier string

const (
	TierID       MatchTier = "ID"
	TierFullName MatchTier = "FULL_NAME"
	TierLastName MatchTier = "LAST_NAME"
	TierNone     MatchTier = "NONE"
)

// ReconciledRecord joins exactly one VoteRecord to zero or one Member.
type ReconciledRecord struct {
	Vote    VoteRecord
	Member  *Member
	Matched bool
	Tier    MatchTier
}

type WarningKind string

const (
	WarnAmbiguousMatch  WarningKind = "AMBIGUOUS_MATCH"
	WarnUnmatchedRecord WarningKind = "UNMATCHED_RECORD"
	WarnCountMismatch   WarningKind = "COUNT_MISMATCH"
)

// Warning is a non-fatal reconciliation or dedup fault, attached to the run
// result instead of aborting it.
type Warning struct {
	Kind    WarningKind
	RawName string
	Message string
}

// OutputRow is the canonical persisted schema.
type OutputRow struct {
	Identifier string `json:"identifier"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	Party      string `json:"party"`
	Region     string `json:"region"`
	SubRegion  string `json:"sub_region"`
	Choice     string `json:"choice"`
}

// PartisanRow is one line of the partisan summary table: how many members of
// each party cast the given choice.
type PartisanRow struct {
	Choice Choice
	Counts map[Party]int
	Total  int
}

// Summary holds the deduplicated tallies for one roll-call vote. Prevailing
// is empty when neither Yea nor Nay received any votes.
type Summary struct {
	Total        int
	PartyCounts  map[Party]int
	ChoiceCounts map[Choice]int
	Partisan     []PartisanRow
	Prevailing   Choice
	Warnings     []Warning
}
