package cookiejar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"xwstats/internal/domain"
	"xwstats/internal/ports"
)

// DefaultCookieName is the NYT session cookie the resolver looks for.
const DefaultCookieName = "NYT-S"

// httpOnlyPrefix marks cookies that browsers export with a pseudo-comment
// prefix; the line is still a valid cookie entry.
const httpOnlyPrefix = "#HttpOnly_"

const cookieFieldCount = 7

// Resolver extracts a named session cookie from a Netscape-format cookie
// file (the cookies.txt layout browser exporters produce). It never mutates
// the store.
type Resolver struct {
	path string
	name string
}

var _ ports.CredentialSource = (*Resolver)(nil)

func NewResolver(path, name string) *Resolver {
	if name == "" {
		name = DefaultCookieName
	}

	return &Resolver{path: filepath.Clean(path), name: name}
}

func (r *Resolver) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("%w: read %q: %v", domain.ErrCookieStoreUnreadable, r.path, err)
	}

	for lineNo, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimPrefix(line, httpOnlyPrefix)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != cookieFieldCount {
			return "", fmt.Errorf("%w: %q line %d: expected %d tab-separated fields, got %d",
				domain.ErrCookieStoreUnreadable, r.path, lineNo+1, cookieFieldCount, len(fields))
		}

		if fields[5] == r.name {
			return fields[6], nil
		}
	}

	return "", fmt.Errorf("%w: no cookie named %q in %q", domain.ErrCookieNotFound, r.name, r.path)
}
