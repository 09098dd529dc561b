package congress

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rollcall/internal"
	"rollcall/internal/config"
)

type Senate struct {
	client      *Client
	rosterURL   string
	voteBaseURL string
}

func NewSenate(client *Client, cfg config.Config) *Senate {
	return &Senate{client: client, rosterURL: cfg.SenateRosterURL, voteBaseURL: cfg.SenateVoteBaseURL}
}

func (s *Senate) Chamber() internal.Chamber { return internal.ChamberSenate }

func (s *Senate) ExpectedMemberCount() int { return 100 }

func (s *Senate) BaseName(ref VoteRef) string {
	return fmt.Sprintf("senate_%d_%d_vote_%05d", ref.Congress, ref.Session, ref.Number)
}

func (s *Senate) FetchRoster(ctx context.Context) ([]internal.Member, error) {
	body, err := s.client.Get(ctx, s.rosterURL)
	if err != nil {
		return nil, err
	}
	return parseSenateRoster(body, s.rosterURL)
}

type senateRosterXML struct {
	Members []struct {
		BioguideID string `xml:"bioguide_id"`
		MemberFull string `xml:"member_full"`
		LastName   string `xml:"last_name"`
		FirstName  string `xml:"first_name"`
		Party      string `xml:"party"`
		State      string `xml:"state"`
	} `xml:"member"`
}

func parseSenateRoster(body []byte, url string) ([]internal.Member, error) {
	var feed senateRosterXML
	if err := xml.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode senate roster %s: %w", url, err)
	}
	if len(feed.Members) == 0 {
		return nil, &ParseError{URL: url, Missing: "member elements"}
	}

	members := make([]internal.Member, 0, len(feed.Members))
	for _, m := range feed.Members {
		members = append(members, internal.Member{
			ID:        strings.TrimSpace(m.BioguideID),
			FullName:  strings.TrimSpace(m.MemberFull),
			LastName:  strings.TrimSpace(m.LastName),
			FirstName: strings.TrimSpace(m.FirstName),
			Party:     internal.ParseParty(m.Party),
			State:     strings.TrimSpace(m.State),
		})
	}
	return members, nil
}

func (s *Senate) voteURL(ref VoteRef) string {
	return fmt.Sprintf("%s/vote%d%d/vote_%d_%d_%05d.htm",
		s.voteBaseURL, ref.Congress, ref.Session, ref.Congress, ref.Session, ref.Number)
}

func (s *Senate) FetchVote(ctx context.Context, ref VoteRef) ([]internal.VoteRecord, error) {
	url := s.voteURL(ref)
	body, err := s.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return parseSenateVote(body, url)
}

// The Senate vote page lists one member per line inside a single content
// span: "Baldwin (D-WI), Yea".
func parseSenateVote(body []byte, url string) ([]internal.VoteRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse senate vote %s: %w", url, err)
	}

	if strings.Contains(doc.Find("title").Text(), "Unavailable") {
		return nil, ErrVoteUnavailable
	}

	text := doc.Find("div.newspaperDisplay_3column span.contenttext").First().Text()
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{URL: url, Missing: "vote data span"}
	}

	votes := make([]internal.VoteRecord, 0, 100)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, ", ", 2)
		record := internal.VoteRecord{RawName: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			record.RawChoice = strings.TrimSpace(parts[1])
			record.Choice = internal.ParseChoice(record.RawChoice)
		}
		votes = append(votes, record)
	}
	return votes, nil
}
