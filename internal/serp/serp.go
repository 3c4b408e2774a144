// Package serp fetches organic search result titles from the DataForSEO
// SERP API.
package serp

import (
	"context"
	"errors"
)

// Provider errors.
var (
	ErrMissingCredentials = errors.New("serp: provider credentials not configured")
	ErrProviderAuth       = errors.New("serp: provider rejected credentials")
	ErrProviderStatus     = errors.New("serp: provider returned an error status")
	ErrResponseShape      = errors.New("serp: unexpected response shape")
)

// MaxTitles is the number of titles returned by Titles.
const MaxTitles = 10

// Provider abstracts a search engine results provider that can return the
// top organic result titles for a keyword.
type Provider interface {
	Titles(ctx context.Context, keyword string) ([]string, error)
}
