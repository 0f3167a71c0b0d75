// amy-server is the chat-driven UI-control service for the Amy trading
// dashboard.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"amy/internal/command"
	"amy/internal/config"
	"amy/internal/intent"
	"amy/internal/llm"
	"amy/internal/logging"
	"amy/internal/observability"
	"amy/internal/registry"
	"amy/internal/resolver"
	"amy/internal/server"
	"amy/internal/session"
)

func main() {
	root := &cobra.Command{
		Use:           "amy-server",
		Short:         "AI-driven UI customization backend for the trading dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	if err := root.Execute(); err != nil {
		color.Red("amy-server: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if cfg.Debug {
		logging.SetLevel(logging.DEBUG)
	}
	logger := logging.NewComponentLogger("amy-server")

	reg := registry.New()
	matcher := intent.New(reg)

	promReg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(promReg)

	normalizer := command.NewNormalizer(reg, logging.NewComponentLogger("normalizer"), func(reason command.DropReason) {
		metrics.CommandsDropped.WithLabelValues(string(reason)).Inc()
	})

	var res *resolver.Resolver
	if cfg.Mode() == "ai" {
		client, err := llm.NewOpenAIClient(cfg.LLMModel, llm.Config{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Timeout: cfg.LLMTimeoutSeconds,
		})
		if err != nil {
			return fmt.Errorf("create llm client: %w", err)
		}

		opts := []resolver.Option{
			resolver.WithTimeout(time.Duration(cfg.LLMTimeoutSeconds) * time.Second),
			resolver.WithFallbackObserver(func(reason resolver.FallbackReason) {
				metrics.ResolverFallback.WithLabelValues(string(reason)).Inc()
			}),
		}
		if cfg.KnowledgeFile != "" {
			blob, err := os.ReadFile(cfg.KnowledgeFile)
			if err != nil {
				logger.Warn("knowledge file unreadable, continuing without it: %v", err)
			} else {
				opts = append(opts, resolver.WithKnowledge(string(blob), cfg.KnowledgeBudget))
			}
		}
		res = resolver.New(client, matcher, reg, opts...)
	}

	store, err := session.NewStore(session.Config{MaxSessions: cfg.MaxSessions, MaxTurns: cfg.MaxTurns})
	if err != nil {
		return fmt.Errorf("create session store: %w", err)
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Host = cfg.Host
	srvCfg.Port = cfg.Port
	srvCfg.Debug = cfg.Debug

	srv := server.New(srvCfg, server.Deps{
		Registry:   reg,
		Matcher:    matcher,
		Resolver:   res,
		Normalizer: normalizer,
		Store:      store,
		Metrics:    metrics,
		PromReg:    promReg,
		Logger:     logging.NewComponentLogger("http"),
	}, cfg.Mode())

	printBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return srv.Stop()
	})
	return g.Wait()
}

func printBanner(cfg *config.Config) {
	color.New(color.FgCyan, color.Bold).Println("Amy AI Backend")
	if cfg.Mode() == "ai" {
		color.Green("mode: ai (model: %s)", cfg.LLMModel)
	} else {
		color.Yellow("mode: demo (no backend key configured, rule-based matcher only)")
	}
	fmt.Printf("listening on %s:%d\n", cfg.Host, cfg.Port)
}
