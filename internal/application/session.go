package application

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"xwstats/internal/domain"
	"xwstats/internal/ports"
)

// Session is one authenticated view of a user's solve history. The token is
// resolved exactly once, at construction, and never refreshed. Fetched month
// summaries accumulate in the puzzle map for the session's lifetime; nothing
// is ever evicted and nothing is persisted.
type Session struct {
	userID string
	token  string
	api    ports.PuzzleAPI

	mu      sync.RWMutex
	puzzles map[domain.Date]domain.Puzzle
}

// NewSession resolves the credential and returns a ready session. Credential
// failures propagate unchanged; a session cannot exist without a token.
func NewSession(ctx context.Context, userID string, creds ports.CredentialSource, api ports.PuzzleAPI) (*Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.New("user id is empty")
	}

	token, err := creds.Token(ctx)
	if err != nil {
		return nil, err
	}

	return &Session{
		userID:  userID,
		token:   token,
		api:     api,
		puzzles: make(map[domain.Date]domain.Puzzle),
	}, nil
}

func (s *Session) UserID() string {
	return s.userID
}

// MonthSummary fetches the archive for one calendar month, merges the results
// into the session, and returns the full day sequence of that month. The
// sequence covers every day in the range whether or not the archive reported
// it, and can be ranged over repeatedly.
func (s *Session) MonthSummary(ctx context.Context, year, month int) (iter.Seq[domain.Date], error) {
	start, end, err := domain.MonthRange(year, month)
	if err != nil {
		return nil, err
	}

	fetched, err := s.api.ArchiveRange(ctx, ports.ArchiveQuery{
		UserID: s.userID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for date, puzzle := range fetched {
		s.puzzles[date] = puzzle
	}
	s.mu.Unlock()

	return domain.DatesBetween(start, end), nil
}

// DayStats returns the record a prior MonthSummary loaded for the date.
// There is no fetch-on-demand: a date no summary has covered fails with
// ErrDayNotLoaded.
func (s *Session) DayStats(date domain.Date) (domain.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	puzzle, ok := s.puzzles[date]
	if !ok {
		return domain.Puzzle{}, fmt.Errorf("%w: %s", domain.ErrDayNotLoaded, date)
	}

	return puzzle, nil
}

// GameStats fetches computed stats for one game. Every call hits the
// service; game details are never cached.
func (s *Session) GameStats(ctx context.Context, gameID string) (domain.GameDetail, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return domain.GameDetail{}, errors.New("game id is empty")
	}

	return s.api.GameDetail(ctx, s.token, gameID)
}

// RangeSummary fetches every month from (fromYear, fromMonth) through
// (toYear, toMonth) in order, one request per month, and returns all dates
// covered. An inverted range is empty and fetches nothing.
func (s *Session) RangeSummary(ctx context.Context, fromYear, fromMonth, toYear, toMonth int) ([]domain.Date, error) {
	months, err := MonthsBetween(fromYear, fromMonth, toYear, toMonth)
	if err != nil {
		return nil, err
	}

	var dates []domain.Date
	for _, ym := range months {
		days, err := s.MonthSummary(ctx, ym.Year, ym.Month)
		if err != nil {
			return nil, fmt.Errorf("summarize %04d-%02d: %w", ym.Year, ym.Month, err)
		}

		for day := range days {
			dates = append(dates, day)
		}
	}

	return dates, nil
}
