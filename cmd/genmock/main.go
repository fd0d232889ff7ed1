// Command genmock generates a mock storm events CSV fixture. Labels are
// deliberately dirtied the way the real archive is: random casing, stray
// whitespace, typos, plurals, and the occasional narrative string in the
// event type column. The output is deterministic for a given seed.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/storms.csv -rows 500 -seed 1
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

var magnitudeCodes = []string{"", "K", "M", "B", "H", "k", "m", "+", "-", "?", "0", "3", "%"}

var narrativeLabels = []string{
	"Summary of April 26 severe weather across the plains",
	"MONTHLY PRECIPITATION TOTALS",
	"NO SEVERE WEATHER REPORTED THIS PERIOD",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the mock CSV")
	rows := flag.Int("rows", 500, "number of data rows to generate")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	rng := rand.New(rand.NewSource(*seed))
	labels := domain.DefaultEventTypes()

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		return err
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"EVTYPE", "FATALITIES", "INJURIES", "PROPDMG", "PROPDMGEXP", "CROPDMG", "CROPDMGEXP"}); err != nil {
		return err
	}

	narrative := 0
	for i := 0; i < *rows; i++ {
		label := dirtyLabel(rng, labels)
		if rng.Intn(50) == 0 {
			label = narrativeLabels[rng.Intn(len(narrativeLabels))]
			narrative++
		}

		row := []string{
			label,
			strconv.Itoa(poissonish(rng, 20)),
			strconv.Itoa(poissonish(rng, 8)),
			strconv.FormatFloat(float64(rng.Intn(1000))/10, 'f', 2, 64),
			magnitudeCodes[rng.Intn(len(magnitudeCodes))],
			strconv.FormatFloat(float64(rng.Intn(500))/10, 'f', 2, 64),
			magnitudeCodes[rng.Intn(len(magnitudeCodes))],
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	log.Printf("wrote %d rows (%d narrative labels) to %s", *rows, narrative, *out)
	return f.Close()
}

// dirtyLabel picks a canonical label and applies zero or more realistic
// corruptions: casing, whitespace, a plural s, or a single-character edit.
func dirtyLabel(rng *rand.Rand, labels []string) string {
	label := labels[rng.Intn(len(labels))]

	switch rng.Intn(4) {
	case 0:
		label = strings.ToUpper(label)
	case 1:
		label = strings.ToLower(label)
	}

	switch rng.Intn(5) {
	case 0:
		label += "S"
	case 1:
		label = typo(rng, label)
	}

	if rng.Intn(6) == 0 {
		label = " " + label + "  "
	}
	return label
}

// typo applies one random character edit.
func typo(rng *rand.Rand, s string) string {
	if len(s) < 2 {
		return s
	}
	i := rng.Intn(len(s) - 1)
	switch rng.Intn(3) {
	case 0: // drop a character
		return s[:i] + s[i+1:]
	case 1: // double a character
		return s[:i+1] + s[i:]
	default: // transpose neighbors
		return s[:i] + string(s[i+1]) + string(s[i]) + s[i+2:]
	}
}

// poissonish returns 0 most of the time with an occasional small count;
// 1-in-oneIn rows get a value up to 30.
func poissonish(rng *rand.Rand, oneIn int) int {
	if rng.Intn(oneIn) != 0 {
		return 0
	}
	return 1 + rng.Intn(30)
}
