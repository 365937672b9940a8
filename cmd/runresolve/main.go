package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/veridoc/ocr-review/gen/ent"
	"github.com/veridoc/ocr-review/internal/common"
	repo "github.com/veridoc/ocr-review/internal/repository"
	"github.com/veridoc/ocr-review/internal/resolve"
)

// runresolve resolves one stored page offline and prints the result as JSON.
// Resolution is read-only, so running it never changes review state.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 3 {
		logger.Error("usage", "cmd", "runresolve <document-id-uuid> <page-index>")
		os.Exit(2)
	}
	documentID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid document id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}
	pageIndex, err := strconv.Atoi(os.Args[2])
	if err != nil || pageIndex < 0 {
		logger.Error("invalid page index", "arg", os.Args[2])
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		logger.Error("DB_URL required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	wordsRepo := repo.NewWordRepository(entc, logger)
	correctionsRepo := repo.NewCorrectionRepository(entc, logger)
	lexiconRepo := repo.NewLexiconRepository(entc, logger)

	resolver := resolve.NewResolver(correctionsRepo, lexiconRepo, resolve.Config{
		PaddingMarkers: cfg.Resolver.PaddingMarkers,
		AutoCorrection: cfg.Lexicon.AutoCorrectionEnabled,
	}, logger)

	doc, err := documentsRepo.GetByID(ctx, documentID)
	if err != nil {
		logger.Error("load document", "document_id", documentID, "error", err)
		os.Exit(1)
	}
	words, err := wordsRepo.ListByDocumentPage(ctx, documentID, pageIndex)
	if err != nil {
		logger.Error("load page words", "document_id", documentID, "page_index", pageIndex, "error", err)
		os.Exit(1)
	}

	start := time.Now()
	page, err := resolver.ResolvePage(ctx, documentID, doc.DocumentType, words)
	if err != nil {
		logger.Error("resolve failed", "document_id", documentID, "page_index", pageIndex, "error", err)
		os.Exit(1)
	}

	for _, rw := range page.Rewrites {
		logger.Info("rewrite",
			"word_index", rw.WordIndex,
			"from", rw.From,
			"to", rw.To,
			"strategy", rw.Strategy)
	}
	logger.Info("resolve OK",
		"document_id", documentID,
		"page_index", pageIndex,
		"words", len(page.Words),
		"rewrites", len(page.Rewrites),
		"duration_ms", time.Since(start).Milliseconds())

	out, err := sonic.MarshalIndent(page, "", "  ")
	if err != nil {
		logger.Error("marshal result", "error", err)
		os.Exit(1)
	}
	out = append(out, '\n')
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Error("write result", "error", err)
		os.Exit(1)
	}
}
