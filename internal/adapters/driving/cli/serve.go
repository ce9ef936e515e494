package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"docqa/internal/adapters/driven/llm/groq"
	"docqa/internal/adapters/driven/storage/sqlite"
	"docqa/internal/adapters/driving/httpapi"
	"docqa/internal/chunker"
	"docqa/internal/config"
	"docqa/internal/core/ports/driven"
	"docqa/internal/core/services"
	"docqa/internal/logger"
	"docqa/internal/retrieval"
	"docqa/internal/watch"
)

var (
	serveConfigPath string
	serveDataDir    string
	servePort       int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the docqa HTTP server",
	Long: `Starts the HTTP API: POST /upload, POST /ask, GET /documents,
GET /documents/{id}, DELETE /documents/{id} and GET /status.

The completion-service credential is read from the GROQ_API_KEY
environment variable (a .env file is honoured). Without it the server
still ingests and lists documents, but /ask returns 503.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to TOML config file")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "data directory (default ~/.docqa/data)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	store, err := sqlite.NewStore(serveDataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()
	logger.Info("Store ready at %s", store.Path())

	var completion driven.CompletionService
	if cfg.APIKey == "" {
		logger.Warn("%s is not set; /ask will return 503", config.EnvAPIKey)
	} else {
		completion, err = groq.NewCompletionService(groq.Config{
			APIKey:            cfg.APIKey,
			BaseURL:           cfg.LLM.BaseURL,
			Model:             cfg.LLM.Model,
			Timeout:           cfg.LLM.Timeout(),
			RequestsPerSecond: cfg.LLM.RequestsPerSecond,
			BurstSize:         cfg.LLM.BurstSize,
		})
		if err != nil {
			return fmt.Errorf("configuring completion service: %w", err)
		}
		defer completion.Close()
		logger.Info("Completion service ready (model %s)", completion.ModelName())
	}

	engine := retrieval.NewEngine(
		retrieval.WithScoreThreshold(cfg.Retrieval.ScoreThreshold),
		retrieval.WithMaxEvidence(cfg.Retrieval.MaxEvidence),
		retrieval.WithMinTermMatches(cfg.Retrieval.MinTermMatches),
		retrieval.WithTokenizerOptions(retrieval.WithExtraStopwords(cfg.Retrieval.ExtraStopwords)),
	)

	askSvc := services.NewAskService(store, completion, engine)
	ingestSvc := services.NewIngestService(store, chunker.New(chunker.WithChunkSize(cfg.Ingest.ChunkSize)))
	docSvc := services.NewDocumentService(store)

	server := httpapi.NewServer(cfg.Server.Port, askSvc, ingestSvc, docSvc, store, completion)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Ingest.WatchDir != "" {
		watcher, err := watch.New(cfg.Ingest.WatchDir, ingestSvc)
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Ingest watcher stopped: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
