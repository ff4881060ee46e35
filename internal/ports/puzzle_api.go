package ports

import (
	"context"

	"xwstats/internal/domain"
)

// ArchiveQuery scopes one archive request to a user and an inclusive
// print-date range.
type ArchiveQuery struct {
	UserID string
	Start  domain.Date
	End    domain.Date
}

type PuzzleAPI interface {
	// ArchiveRange fetches daily-puzzle summaries for the range and returns
	// them keyed by print date. Dates the service reports nothing for are
	// simply absent. The archive endpoint takes no session token.
	ArchiveRange(ctx context.Context, query ArchiveQuery) (map[domain.Date]domain.Puzzle, error)

	// GameDetail fetches computed stats for one game, authorized by token.
	GameDetail(ctx context.Context, token, gameID string) (domain.GameDetail, error)
}
