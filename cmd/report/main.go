// Command report generates a ranked storm impact report from a storm events
// CSV file: human toll and economic damage aggregated per canonical event
// type, printed as text tables and optionally rendered as HTML bar charts
// and a JSON dump.
//
// Usage:
//
//	go run ./cmd/report -input data/StormData.csv.bz2 [-charts out/report.html] [-json out/report.json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/storm-impact-report/internal/adapter/csvfile"
	"github.com/couchcryptid/storm-impact-report/internal/adapter/render"
	"github.com/couchcryptid/storm-impact-report/internal/config"
	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

func main() {
	input := flag.String("input", "", "path to the storm events CSV (.csv, .csv.gz, .csv.bz2)")
	chartsOut := flag.String("charts", "", "write HTML bar charts to this path (overrides CHART_OUT)")
	jsonOut := flag.String("json", "", "write the full report as JSON to this path")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	chartPath := cfg.ChartOut
	if *chartsOut != "" {
		chartPath = *chartsOut
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, metrics, *input, chartPath, *jsonOut); err != nil {
		logger.Error("report generation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, input, chartPath, jsonPath string) error {
	catalog, err := domain.NewCatalog(domain.DefaultEventTypes(), cfg.MaxLabelDistance)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	reader := csvfile.NewReader(input, csvfile.DefaultColumns(), logger)
	p := pipeline.New(reader, catalog, logger, metrics)

	report, err := p.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("report generated",
		"records_in", report.RecordsIn,
		"records_dropped", report.RecordsDropped,
		"unrecognized_codes", report.UnrecognizedCodes,
	)

	if err := render.WriteReport(os.Stdout, report, cfg.TopN); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if chartPath != "" {
		if err := writeCharts(chartPath, report, cfg.TopN); err != nil {
			return err
		}
		logger.Info("charts written", "path", chartPath)
	}

	if jsonPath != "" {
		if err := writeJSON(jsonPath, report); err != nil {
			return err
		}
		logger.Info("report JSON written", "path", jsonPath)
	}

	return nil
}

func writeCharts(path string, report *pipeline.Report, topN int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create charts file: %w", err)
	}
	defer f.Close()

	if err := render.WriteCharts(f, report, topN); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	return f.Close()
}

func writeJSON(path string, report *pipeline.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report JSON: %w", err)
	}
	return nil
}
