package congress

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rollcall/internal"
	"rollcall/internal/config"
	"rollcall/internal/util"
)

type House struct {
	client      *Client
	rosterURL   string
	voteBaseURL string
}

func NewHouse(client *Client, cfg config.Config) *House {
	return &House{client: client, rosterURL: cfg.HouseRosterURL, voteBaseURL: cfg.HouseVoteBaseURL}
}

func (h *House) Chamber() internal.Chamber { return internal.ChamberHouse }

func (h *House) ExpectedMemberCount() int { return 435 }

// House votes have no session component; the naming convention keeps the
// slot blank.
func (h *House) BaseName(ref VoteRef) string {
	return fmt.Sprintf("house_%d__vote_%03d", ref.Year, ref.Number)
}

func (h *House) FetchRoster(ctx context.Context) ([]internal.Member, error) {
	body, err := h.client.Get(ctx, h.rosterURL)
	if err != nil {
		return nil, err
	}
	return parseHouseRoster(body, h.rosterURL)
}

func parseHouseRoster(body []byte, url string) ([]internal.Member, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse house roster %s: %w", url, err)
	}

	table := doc.Find("table.library-table").First()
	if table.Length() == 0 {
		return nil, &ParseError{URL: url, Missing: "member list table"}
	}

	members := make([]internal.Member, 0, 435)
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		name := strings.TrimSpace(row.Find("span[data-name]").First().Text())
		cells := row.Find("td")
		if name == "" || cells.Length() < 4 {
			return
		}

		// "Alabama (AL)" -> "Alabama" -> "AL"
		stateInfo := strings.TrimSpace(cells.Eq(2).Text())
		state := util.StateAbbreviation(strings.SplitN(stateInfo, " (", 2)[0])

		id := ""
		if href, ok := row.Find("a").First().Attr("href"); ok {
			id = strings.TrimPrefix(href, "/members/")
		}

		members = append(members, internal.Member{
			ID:       id,
			FullName: name,
			Party:    internal.ParseParty(cells.Eq(1).Text()),
			State:    state,
			District: strings.TrimSpace(cells.Eq(3).Text()),
		})
	})

	if len(members) == 0 {
		return nil, &ParseError{URL: url, Missing: "member rows"}
	}
	return members, nil
}

func (h *House) voteURL(ref VoteRef) string {
	// Page=2 is the by-member listing.
	return fmt.Sprintf("%s/%d%03d?Page=2", h.voteBaseURL, ref.Year, ref.Number)
}

func (h *House) FetchVote(ctx context.Context, ref VoteRef) ([]internal.VoteRecord, error) {
	url := h.voteURL(ref)
	body, err := h.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseHouseVote(body, url)
}

func parseHouseVote(body []byte, url string) ([]internal.VoteRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse house vote %s: %w", url, err)
	}

	tables := doc.Find("table")
	if tables.Length() < 2 {
		return nil, &ParseError{URL: url, Missing: "roll call vote table"}
	}

	votes := make([]internal.VoteRecord, 0, 435)
	tables.Eq(1).Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		id := ""
		if href, ok := cells.Eq(0).Find("a").First().Attr("href"); ok {
			id = strings.TrimPrefix(href, "/Members/")
		}

		rawChoice := strings.TrimSpace(cells.Eq(5).Text())
		votes = append(votes, internal.VoteRecord{
			RawName:   strings.TrimSpace(cells.Eq(0).Text()),
			RawChoice: rawChoice,
			Choice:    internal.ParseChoice(rawChoice),
			SourceID:  id,
		})
	})

	if len(votes) == 0 {
		return nil, &ParseError{URL: url, Missing: "vote rows"}
	}
	return votes, nil
}
