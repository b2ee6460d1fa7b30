package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"migel-service/internal/config"
	"migel-service/internal/deploy"
	"migel-service/internal/fetch"
	"migel-service/internal/fileio"
	migelHnd "migel-service/internal/migel/handler"
	"migel-service/internal/migel/ingest"
	"migel-service/internal/migel/model"
	"migel-service/internal/migel/service"
	"migel-service/internal/store"
	serverhttp "migel-service/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	var (
		migelFlag  = flag.Bool("migel", false, "download the MiGeL list and map codes/limitations onto products")
		localCSV   = flag.Bool("local-csv", false, "use the locally cached firstbase.csv instead of downloading")
		deployFlag = flag.Bool("deploy", false, "scp the produced database to the remote server (plain filename without date)")
		serveFlag  = flag.Bool("serve", false, "run the HTTP matching service instead of a one-shot batch")
	)
	flag.Parse()

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	stop, err := service.LoadStopWords(cfg.StopwordsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("load stopwords")
	}

	if *serveFlag {
		runServe(cfg, logger, stop)
		return
	}
	if err := runBatch(context.Background(), cfg, logger, stop, *migelFlag, *localCSV, *deployFlag); err != nil {
		logger.Fatal().Err(err).Msg("batch run")
	}
}

func runBatch(ctx context.Context, cfg config.Config, logger zerolog.Logger, stop *service.StopWords, migelMode, localCSV, deployMode bool) error {
	var (
		content []byte
		err     error
	)
	if localCSV {
		logger.Info().Str("file", cfg.CSVFile).Msg("reading local CSV")
		content, err = os.ReadFile(cfg.CSVFile)
	} else {
		logger.Info().Str("url", cfg.CSVURL).Msg("downloading CSV")
		content, err = fetch.GetFile(ctx, cfg.CSVURL, cfg.CSVFile)
	}
	if err != nil {
		return err
	}

	rows, err := fileio.ReadRows(bytes.NewReader(content), cfg.CSVFile)
	if err != nil {
		return fmt.Errorf("parse %s: %w", cfg.CSVFile, err)
	}
	if len(rows) == 0 {
		return errors.New("CSV has no rows")
	}
	logger.Info().Int("lines", len(rows)).Msg("CSV parsed")

	headers, products := ingest.Products(rows, model.DefaultProductMapping())

	if !migelMode {
		plain := make([][]string, len(products))
		for i := range products {
			plain[i] = products[i].Row
		}
		if err := store.WriteTable(cfg.DBFile, headers, plain); err != nil {
			return err
		}
		logger.Info().Str("db", cfg.DBFile).Int("rows", len(plain)).Msg("database created")
		return deploy.Scp(ctx, cfg.DBFile, cfg.DeployDest)
	}

	return runMigel(ctx, cfg, logger, stop, headers, products, deployMode)
}

func runMigel(ctx context.Context, cfg config.Config, logger zerolog.Logger, stop *service.StopWords, headers []string, products []model.ProductRow, deployMode bool) error {
	m, err := loadMatcher(ctx, cfg, logger, stop)
	if err != nil {
		return err
	}

	logger.Info().Int("products", len(products)).Msg("matching in parallel")
	start := time.Now()
	results := m.MatchAll(ctx, products)
	matched := service.Matched(results)
	logger.Info().
		Int("products", len(products)).
		Int("matched", matched).
		Dur("elapsed", time.Since(start)).
		Msg("matching done")

	outHeaders := append(headers, "migel_code", "migel_bezeichnung", "migel_limitation")
	outRows := make([][]string, 0, matched)
	for i := range results {
		if !results[i].Matched {
			continue
		}
		outRows = append(outRows, append(products[i].Row,
			results[i].PositionNr, results[i].Bezeichnung, results[i].Limitation))
	}

	dbName := "firstbase_migel.db"
	if !deployMode {
		dbName = time.Now().Format("firstbase_migel_02.01.2006.db")
	}
	if err := store.WriteTable(dbName, outHeaders, outRows); err != nil {
		return err
	}
	logger.Info().Str("db", dbName).Int("rows", len(outRows)).Msg("database created")

	if deployMode {
		return deploy.Scp(ctx, dbName, cfg.DeployDest)
	}
	return nil
}

// loadMatcher downloads and parses the MiGeL workbook and builds the keyword
// index. Used by both the batch run and the serve-mode refresh.
func loadMatcher(ctx context.Context, cfg config.Config, logger zerolog.Logger, stop *service.StopWords) (*service.Matcher, error) {
	logger.Info().Str("url", cfg.MigelURL).Msg("downloading MiGeL workbook")
	b, err := fetch.GetFile(ctx, cfg.MigelURL, cfg.MigelFile)
	if err != nil {
		return nil, err
	}
	sheets, err := fileio.ReadSheets(bytes.NewReader(b), cfg.MigelFile)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", cfg.MigelFile, err)
	}
	entries := ingest.Catalog(sheets)
	if len(entries) == 0 {
		return nil, errors.New("no MiGeL positions found in workbook")
	}
	m := service.NewMatcher(entries, stop, cfg.Workers)
	logger.Info().
		Int("entries", m.Entries()).
		Int("keywords", m.Keywords()).
		Msg("keyword index built")
	return m, nil
}

func runServe(cfg config.Config, logger zerolog.Logger, stop *service.StopWords) {
	cat := migelHnd.NewCatalog(func(ctx context.Context) (*service.Matcher, error) {
		return loadMatcher(ctx, cfg, logger, stop)
	})
	if err := cat.Refresh(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("initial catalog load")
	}

	var cr *cron.Cron
	if cfg.RefreshCron != "" {
		cr = cron.New()
		_, err := cr.AddFunc(cfg.RefreshCron, func() {
			if err := cat.Refresh(context.Background()); err != nil {
				logger.Error().Err(err).Msg("scheduled refresh")
			}
		})
		if err != nil {
			logger.Fatal().Err(err).Str("cron", cfg.RefreshCron).Msg("bad REFRESH_CRON")
		}
		cr.Start()
		logger.Info().Str("cron", cfg.RefreshCron).Msg("catalog refresh scheduled")
	}

	r := serverhttp.NewRouter(cfg, logger, cat)
	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	if cr != nil {
		cr.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
