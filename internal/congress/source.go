// Package congress fetches rosters and roll-call vote pages from the two
// chamber websites and parses them into row structures for reconciliation.
package congress

import (
	"context"
	"fmt"

	"rollcall/internal"
	"rollcall/internal/config"
)

// VoteRef identifies one roll-call vote. The Senate addresses votes by
// congress/session/number, the House by year/number; each adapter reads the
// fields it needs.
type VoteRef struct {
	Congress int
	Session  int
	Year     int
	Number   int
}

// VoteSource is a chamber adapter. Both implementations are stateless apart
// from the shared HTTP client.
type VoteSource interface {
	Chamber() internal.Chamber
	FetchRoster(ctx context.Context) ([]internal.Member, error)
	FetchVote(ctx context.Context, ref VoteRef) ([]internal.VoteRecord, error)
	ExpectedMemberCount() int
	BaseName(ref VoteRef) string
}

func New(chamber internal.Chamber, client *Client, cfg config.Config) (VoteSource, error) {
	switch chamber {
	case internal.ChamberSenate:
		return NewSenate(client, cfg), nil
	case internal.ChamberHouse:
		return NewHouse(client, cfg), nil
	}
	return nil, fmt.Errorf("unsupported chamber: %s", chamber)
}
