package congress

import (
	"errors"
	"testing"

	"rollcall/internal"
)

const houseRosterHTML = `<html><body><table class="library-table">
<tr><th>Member</th><th>Party</th><th>State</th><th>District</th></tr>
<tr><td><a href="/members/A000055"><span data-name="true">Aderholt, Robert B.</span></a></td><td>Republican</td><td>Alabama (AL)</td><td>4th</td></tr>
<tr><td><a href="/members/O000172"><span data-name="true">Ocasio-Cortez, Alexandria</span></a></td><td>Democratic</td><td>New York (NY)</td><td>14th</td></tr>
<tr><td>no name span here</td><td>x</td><td>x</td><td>x</td></tr>
</table></body></html>`

func TestParseHouseRoster(t *testing.T) {
	members, err := parseHouseRoster([]byte(houseRosterHTML), "test://roster")
	if err != nil {
		t.Fatal(err)
	}
	if len(members) != 2 {
		t.Fatalf("len=%d", len(members))
	}
	m := members[0]
	if m.ID != "A000055" || m.FullName != "Aderholt, Robert B." || m.Party != internal.PartyRepublican || m.State != "AL" || m.District != "4th" {
		t.Fatalf("member: %+v", m)
	}
	if members[1].Party != internal.PartyDemocratic || members[1].State != "NY" {
		t.Fatalf("member: %+v", members[1])
	}
}

func TestParseHouseRosterMissingTable(t *testing.T) {
	_, err := parseHouseRoster([]byte(`<html><body><p>maintenance</p></body></html>`), "test://roster")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v", err)
	}
}

const houseVoteHTML = `<html><body>
<table><tr><td>vote metadata</td></tr></table>
<table>
<tr><th>Member</th><th>Party</th><th>State</th><th>District</th><th>Sort</th><th>Vote</th></tr>
<tr><td><a href="/Members/A000055">Aderholt</a></td><td>R</td><td>AL</td><td>4</td><td>a</td><td>Aye</td></tr>
<tr><td><a href="/Members/O000172">Ocasio-Cortez</a></td><td>D</td><td>NY</td><td>14</td><td>o</td><td>No</td></tr>
<tr><td>short row</td></tr>
</table></body></html>`

func TestParseHouseVote(t *testing.T) {
	votes, err := parseHouseVote([]byte(houseVoteHTML), "test://vote")
	if err != nil {
		t.Fatal(err)
	}
	if len(votes) != 2 {
		t.Fatalf("len=%d", len(votes))
	}
	if votes[0].SourceID != "A000055" || votes[0].RawChoice != "Aye" || votes[0].Choice != internal.ChoiceYea {
		t.Fatalf("vote 0: %+v", votes[0])
	}
	if votes[1].SourceID != "O000172" || votes[1].Choice != internal.ChoiceNay {
		t.Fatalf("vote 1: %+v", votes[1])
	}
}

func TestParseHouseVoteMissingTable(t *testing.T) {
	_, err := parseHouseVote([]byte(`<html><body><table><tr><td>only one</td></tr></table></body></html>`), "test://vote")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestHouseNaming(t *testing.T) {
	h := &House{voteBaseURL: "https://clerk.house.gov/Votes"}
	ref := VoteRef{Year: 2025, Number: 17}
	if got := h.BaseName(ref); got != "house_2025__vote_017" {
		t.Fatalf("base name: %q", got)
	}
	if got := h.voteURL(ref); got != "https://clerk.house.gov/Votes/2025017?Page=2" {
		t.Fatalf("vote url: %q", got)
	}
}
