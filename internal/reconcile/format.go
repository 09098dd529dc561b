package reconcile

import (
	"strings"

	"rollcall/internal"
	"rollcall/internal/util"
)

// FormatRows reshapes reconciled records into the persisted column schema,
// preserving input order. Combined "Last, First" display names are split on
// the first comma; without a comma the whole name is the last name. Unmatched
// records keep their choice and leave the member columns empty.
func FormatRows(records []internal.ReconciledRecord) []internal.OutputRow {
	rows := make([]internal.OutputRow, 0, len(records))

	for _, rec := range records {
		row := internal.OutputRow{Choice: rec.Vote.RawChoice}

		if rec.Member != nil {
			m := rec.Member
			row.Identifier = m.ID
			row.Party = string(m.Party)
			row.Region = strings.ToUpper(util.StateAbbreviation(m.State))
			row.SubRegion = m.District

			row.LastName = m.LastName
			row.FirstName = m.FirstName
			if row.LastName == "" && row.FirstName == "" {
				row.LastName, row.FirstName = util.SplitDisplayName(m.FullName)
			}
		}

		rows = append(rows, row)
	}

	return rows
}
