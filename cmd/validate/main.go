// Command validate cross-checks a previously generated report JSON against
// the raw CSV it was produced from. It re-runs the full pipeline on the CSV
// and verifies record counts, drop counts, and both ranked aggregates.
//
// Usage:
//
//	go run ./cmd/validate -input data/mock/storms.csv -report out/report.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/couchcryptid/storm-impact-report/internal/adapter/csvfile"
	"github.com/couchcryptid/storm-impact-report/internal/domain"
	"github.com/couchcryptid/storm-impact-report/internal/observability"
	"github.com/couchcryptid/storm-impact-report/internal/pipeline"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	input := flag.String("input", "", "path to the raw storm events CSV")
	reportPath := flag.String("report", "", "path to the report JSON produced by cmd/report -json")
	maxDistance := flag.Int("max-distance", domain.DefaultMaxDistance, "label matching distance cap used for the report")
	flag.Parse()

	if *input == "" || *reportPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*input, *reportPath, *maxDistance); code != 0 {
		os.Exit(code)
	}
}

func run(input, reportPath string, maxDistance int) int {
	fmt.Println("=== Storm Impact Report Validation ===")
	fmt.Println()

	stored, err := loadReport(reportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load report JSON: %v\n", err)
		return 1
	}

	recomputed, err := recompute(input, maxDistance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: recompute pipeline: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateCounts(stored, recomputed),
		validateRanking("toll", stored.RankedToll, recomputed.RankedToll),
		validateRanking("damage", stored.RankedDamage, recomputed.RankedDamage),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d in, %d dropped, %d output rows\n",
		recomputed.RecordsIn, recomputed.RecordsDropped, len(recomputed.RankedToll))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func loadReport(path string) (*pipeline.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var report pipeline.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// recompute re-runs the full pipeline over the raw CSV.
func recompute(input string, maxDistance int) (*pipeline.Report, error) {
	catalog, err := domain.NewCatalog(domain.DefaultEventTypes(), maxDistance)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reader := csvfile.NewReader(input, csvfile.DefaultColumns(), logger)
	p := pipeline.New(reader, catalog, logger, observability.NewMetricsForTesting())

	return p.Run(context.Background())
}

// ── Phase 1: record counts ──

func validateCounts(stored, recomputed *pipeline.Report) *phase {
	p := &phase{name: "Phase 1: Record counts"}

	if stored.RecordsIn != recomputed.RecordsIn {
		p.errorf("records in: report says %d, CSV has %d", stored.RecordsIn, recomputed.RecordsIn)
	}
	if stored.RecordsDropped != recomputed.RecordsDropped {
		p.errorf("records dropped: report says %d, recomputed %d", stored.RecordsDropped, recomputed.RecordsDropped)
	}
	if stored.UnrecognizedCodes != recomputed.UnrecognizedCodes {
		p.errorf("unrecognized codes: report says %d, recomputed %d", stored.UnrecognizedCodes, recomputed.UnrecognizedCodes)
	}
	return p
}

// ── Phase 2/3: ranked aggregates ──

func validateRanking(metric string, stored, recomputed []pipeline.Summary) *phase {
	p := &phase{name: fmt.Sprintf("Phase 2: Ranked %s aggregate", metric)}
	if metric == "damage" {
		p.name = "Phase 3: Ranked damage aggregate"
	}

	if len(stored) != len(recomputed) {
		p.errorf("%s rows: report has %d, recomputed %d", metric, len(stored), len(recomputed))
		return p
	}

	for i := range recomputed {
		if stored[i].EventType != recomputed[i].EventType {
			p.errorf("%s rank %d: report %q, recomputed %q", metric, i+1, stored[i].EventType, recomputed[i].EventType)
			continue
		}
		if !floatEq(stored[i].Value, recomputed[i].Value) {
			p.errorf("%s %q: report %g, recomputed %g", metric, stored[i].EventType, stored[i].Value, recomputed[i].Value)
		}
	}
	return p
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
