package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	reviewpb "github.com/veridoc/ocr-review/gen/proto/review/v1"
	"github.com/veridoc/ocr-review/internal/classify"
	"github.com/veridoc/ocr-review/internal/common"
	"github.com/veridoc/ocr-review/internal/export"
	"github.com/veridoc/ocr-review/internal/lexicon"
	"github.com/veridoc/ocr-review/internal/metrics"
	"github.com/veridoc/ocr-review/internal/ocr"
	"github.com/veridoc/ocr-review/internal/quality"
	repo "github.com/veridoc/ocr-review/internal/repository"
	"github.com/veridoc/ocr-review/internal/resolve"
	"github.com/veridoc/ocr-review/internal/review"
	svc "github.com/veridoc/ocr-review/internal/server"
	"github.com/veridoc/ocr-review/internal/training"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file, using system environment variables")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(svc.RequestLogger(logger)))

	documentsRepo := repo.NewDocumentRepository(entc, logger)
	pagesRepo := repo.NewPageRepository(entc, logger)
	wordsRepo := repo.NewWordRepository(entc, logger)
	correctionsRepo := repo.NewCorrectionRepository(entc, logger)
	lexiconRepo := repo.NewLexiconRepository(entc, logger)
	samplesRepo := repo.NewTrainingSampleRepository(entc, logger)

	resolver := resolve.NewResolver(correctionsRepo, lexiconRepo, resolve.Config{
		PaddingMarkers: cfg.Resolver.PaddingMarkers,
		AutoCorrection: cfg.Lexicon.AutoCorrectionEnabled,
	}, logger)
	learner := lexicon.NewLearner(correctionsRepo, lexiconRepo, cfg.Lexicon, logger)
	collector := training.NewCollector(samplesRepo, cfg.Training, logger)
	recorder := metrics.NewRecorder()

	reviewSvc := review.NewService(review.Deps{
		Documents:   documentsRepo,
		Pages:       pagesRepo,
		Words:       wordsRepo,
		Corrections: correctionsRepo,
		Lexicon:     lexiconRepo,
		Extractor:   ocr.NewExtractor(logger),
		Classifier:  classify.NewClassifier(classify.DefaultThreshold, logger),
		Scorer:      quality.NewScorer(logger),
		Resolver:    resolver,
		Learner:     learner,
		Collector:   collector,
		Metrics:     recorder,
	}, logger)
	exportSvc := export.NewService(documentsRepo, pagesRepo, wordsRepo, resolver, logger)

	reviewpb.RegisterReviewServiceServer(grpcServer, svc.NewReviewServer(reviewSvc, logger))
	reviewpb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	var ready atomic.Bool
	httpSrv := metrics.StartServer(cfg.Server.HealthAddr, recorder, ready.Load, logger)

	logger.Info("reviewd listening", "grpc_addr", addr, "health_addr", cfg.Server.HealthAddr)
	ready.Store(true)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("health server shutdown", "error", err)
	}
}
