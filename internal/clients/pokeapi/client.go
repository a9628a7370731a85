// Package pokeapi is the read-only client for the PokeAPI REST service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/dexseed/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/dexseed/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultUserAgent identifies the tool to the upstream service
	DefaultUserAgent = "dexseed/1.0"

	pokemonPath = "pokemon"
	speciesPath = "pokemon-species"
)

// Client defines the upstream calls the normalizer needs. Every method
// returns an error for any transport, status or decode failure; the failure
// is already logged, so callers only have to substitute defaults.
type Client interface {
	// GetPokemon fetches the primary record for one id
	GetPokemon(ctx context.Context, id int) (*Pokemon, error)

	// GetSpecies fetches the species record for one id
	GetSpecies(ctx context.Context, id int) (*Species, error)

	// GetEvolutionChain fetches a chain by the opaque URL a species points at
	GetEvolutionChain(ctx context.Context, url string) (*EvolutionChain, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL of the API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for each request (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// UserAgent header value (optional, defaults to DefaultUserAgent)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return errors.InvalidArgumentf("base URL must be http(s): %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return nil
}

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, id int) (*Pokemon, error) {
	var p Pokemon
	if err := c.fetchJSON(ctx, c.resourceURL(pokemonPath, id), &p); err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %d", id)
	}
	return &p, nil
}

func (c *client) GetSpecies(ctx context.Context, id int) (*Species, error) {
	var s Species
	if err := c.fetchJSON(ctx, c.resourceURL(speciesPath, id), &s); err != nil {
		return nil, errors.Wrapf(err, "failed to get species %d", id)
	}
	return &s, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, url string) (*EvolutionChain, error) {
	if url == "" {
		return nil, errors.InvalidArgument("evolution chain URL cannot be empty")
	}

	var chain EvolutionChain
	if err := c.fetchJSON(ctx, url, &chain); err != nil {
		return nil, errors.Wrap(err, "failed to get evolution chain")
	}
	return &chain, nil
}

func (c *client) resourceURL(resource string, id int) string {
	return fmt.Sprintf("%s/%s/%d", c.baseURL, resource, id)
}

// fetchJSON issues a GET and decodes the body into out. Failures are logged
// here with the URL and cause before being returned.
func (c *client) fetchJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return c.logFailure(ctx, url, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request"))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.logFailure(ctx, url, errors.WrapWithCode(err, errors.CodeUnavailable, "request failed"))
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body already consumed
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.logFailure(ctx, url, errors.FromHTTPStatus(resp.StatusCode, url))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.logFailure(ctx, url, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to decode response body"))
	}

	return nil
}

func (c *client) logFailure(ctx context.Context, url string, err *errors.Error) error {
	slog.WarnContext(ctx, "error fetching data",
		"url", url,
		"code", err.Code.String(),
		"error", err.Error())
	return err.WithMeta("url", url)
}
