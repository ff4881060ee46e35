package nyt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"xwstats/internal/domain"
	"xwstats/internal/ports"
)

// DefaultBaseURL is the crosswords service root the endpoints hang off.
const DefaultBaseURL = "https://nyt-games-prd.appspot.com/svc/crosswords"

// sessionTokenHeader carries the session cookie value on game requests.
const sessionTokenHeader = "nyt-s"

// Client talks to the crosswords archive and game endpoints.
type Client struct {
	http *resty.Client
}

var _ ports.PuzzleAPI = (*Client)(nil)

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("User-Agent", "xw/stats")

	return &Client{http: client}
}

// Archive entries decode through pointers so that a result missing any
// expected field aborts the whole call instead of silently zero-filling.
type archiveEntry struct {
	PrintDate     *string  `json:"print_date"`
	PuzzleID      *int64   `json:"puzzle_id"`
	Solved        *bool    `json:"solved"`
	PercentFilled *float64 `json:"percent_filled"`
}

type archiveResponse struct {
	Results []archiveEntry `json:"results"`
}

func (c *Client) ArchiveRange(ctx context.Context, query ports.ArchiveQuery) (map[domain.Date]domain.Puzzle, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("uid", query.UserID).
		SetQueryParams(map[string]string{
			"publish_type": "daily",
			"sort_order":   "asc",
			"sort_by":      "print_date",
			"date_start":   query.Start.String(),
			"date_end":     query.End.String(),
		}).
		Get("/v3/{uid}/puzzles.json")
	if err != nil {
		return nil, fmt.Errorf("%w: archive request: %v", domain.ErrFetchFailed, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("%w: archive request: status %d: %s",
			domain.ErrFetchFailed, res.StatusCode(), strings.TrimSpace(res.String()))
	}

	var payload archiveResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: decode archive payload: %v", domain.ErrBadResponse, err)
	}

	puzzles := make(map[domain.Date]domain.Puzzle, len(payload.Results))
	for i, entry := range payload.Results {
		if entry.PrintDate == nil || entry.PuzzleID == nil || entry.Solved == nil || entry.PercentFilled == nil {
			return nil, fmt.Errorf("%w: archive result %d is missing fields", domain.ErrBadResponse, i)
		}

		printDate, err := domain.ParseDate(*entry.PrintDate)
		if err != nil {
			return nil, fmt.Errorf("%w: archive result %d: %v", domain.ErrBadResponse, i, err)
		}

		puzzles[printDate] = domain.Puzzle{
			ID:     domain.PuzzleID(*entry.PuzzleID),
			Status: domain.DeriveStatus(*entry.Solved, *entry.PercentFilled),
		}
	}

	return puzzles, nil
}

type gameResponse struct {
	Calcs  json.RawMessage `json:"calcs"`
	Firsts json.RawMessage `json:"firsts"`
}

func (c *Client) GameDetail(ctx context.Context, token, gameID string) (domain.GameDetail, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader(sessionTokenHeader, token).
		SetPathParam("gid", gameID).
		Get("/v6/game/{gid}.json")
	if err != nil {
		return domain.GameDetail{}, fmt.Errorf("%w: game request: %v", domain.ErrFetchFailed, err)
	}
	if res.IsError() {
		return domain.GameDetail{}, fmt.Errorf("%w: game request: status %d: %s",
			domain.ErrFetchFailed, res.StatusCode(), strings.TrimSpace(res.String()))
	}

	var payload gameResponse
	if err := json.Unmarshal(res.Body(), &payload); err != nil {
		return domain.GameDetail{}, fmt.Errorf("%w: decode game payload: %v", domain.ErrBadResponse, err)
	}
	if payload.Calcs == nil {
		return domain.GameDetail{}, fmt.Errorf("%w: game payload has no calcs", domain.ErrBadResponse)
	}

	return domain.GameDetail{Calcs: payload.Calcs, Firsts: payload.Firsts}, nil
}
