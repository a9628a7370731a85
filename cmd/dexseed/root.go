package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dexseed/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexseed/internal/config"
	"github.com/KirkDiggler/dexseed/internal/entities/dex"
	"github.com/KirkDiggler/dexseed/internal/errors"
	dexorch "github.com/KirkDiggler/dexseed/internal/orchestrators/dex"
	redisclient "github.com/KirkDiggler/dexseed/internal/redis"
	"github.com/KirkDiggler/dexseed/internal/repositories/records"
)

const redisDialTimeout = 5 * time.Second

// app carries the resolved configuration from the root command into its
// subcommands
type app struct {
	configFile string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "dexseed",
		Short: "Generate an editable creature seed document from PokeAPI",
		Long: `dexseed fetches creature data from PokeAPI, normalizes every record into
an original / editable / delta layout and writes the batch as one YAML or
JSON document for manual balance curation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./dexseed.yaml when present)")
	flags.String("api-base-url", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	flags.Duration("http-timeout", config.DefaultHTTPTimeout, "timeout for each upstream request")
	flags.String("user-agent", pokeapi.DefaultUserAgent, "User-Agent sent upstream")
	flags.String("sprite-url-template", dex.DefaultSpriteURLTemplate, "sprite URL, {id} is replaced with the record number")
	flags.StringSlice("version-groups", dex.DefaultVersionGroups, "learnset version groups in priority order")
	flags.String("redis-addr", "", "Redis address for the record store (disabled when empty)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	flags.String("output", config.DefaultOutput, "output document path")
	flags.String("format", "", "output format: yaml or json (default from the output extension)")

	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newShowCmd(a))
	cmd.AddCommand(newExportCmd(a))
	cmd.AddCommand(newPruneCmd(a))

	return cmd
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(&config.LoadInput{
		ConfigFile: a.configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	setupLogging(cmd.ErrOrStderr(), cfg.SlogLevel())
	return nil
}

func setupLogging(w io.Writer, level slog.Level) {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func (a *app) newClient() (pokeapi.Client, error) {
	return pokeapi.New(&pokeapi.Config{
		BaseURL:     a.cfg.APIBaseURL,
		HTTPTimeout: a.cfg.HTTPTimeout,
		UserAgent:   a.cfg.UserAgent,
	})
}

// newRecordRepo returns a nil repository when no store is configured. The
// returned close func is always safe to call.
func (a *app) newRecordRepo() (records.Repository, func(), error) {
	noop := func() {}
	if !a.cfg.RedisEnabled() {
		return nil, noop, nil
	}

	client, err := redisclient.NewClient(a.cfg.RedisAddr, &redisclient.Options{
		DialTimeout:  redisDialTimeout,
		PingOnCreate: true,
	})
	if err != nil {
		return nil, noop, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis").
			WithMeta("addr", a.cfg.RedisAddr)
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	repo, err := records.NewRedis(&records.RedisConfig{Client: client})
	if err != nil {
		closeFn()
		return nil, noop, err
	}

	return repo, closeFn, nil
}

// requireRecordRepo is newRecordRepo for commands that cannot run without
// the store
func (a *app) requireRecordRepo() (records.Repository, func(), error) {
	if !a.cfg.RedisEnabled() {
		return nil, func() {}, errors.InvalidArgument("redis_addr is required for this command")
	}
	return a.newRecordRepo()
}

func (a *app) newOrchestrator(repo records.Repository) (dexorch.Service, error) {
	client, err := a.newClient()
	if err != nil {
		return nil, err
	}

	return dexorch.NewOrchestrator(&dexorch.Config{
		Client:            client,
		RecordRepo:        repo,
		VersionGroups:     a.cfg.VersionGroups,
		SpriteURLTemplate: a.cfg.SpriteURLTemplate,
	})
}
