// Package csvfile reads storm event records from a local CSV file,
// transparently decompressing bzip2 or gzip input by file extension.
package csvfile

import (
	"compress/bzip2"
	"compress/gzip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/couchcryptid/storm-impact-report/internal/domain"
)

// Columns names the required header columns of the input table. The zero
// value is not usable; start from DefaultColumns.
type Columns struct {
	EventType          string
	Fatalities         string
	Injuries           string
	PropertyDamage     string
	PropertyDamageCode string
	CropDamage         string
	CropDamageCode     string
}

// DefaultColumns returns the NOAA Storm Events column names.
func DefaultColumns() Columns {
	return Columns{
		EventType:          "EVTYPE",
		Fatalities:         "FATALITIES",
		Injuries:           "INJURIES",
		PropertyDamage:     "PROPDMG",
		PropertyDamageCode: "PROPDMGEXP",
		CropDamage:         "CROPDMG",
		CropDamageCode:     "CROPDMGEXP",
	}
}

// Reader materializes raw records from a CSV file.
// It implements pipeline.Extractor.
type Reader struct {
	path    string
	columns Columns
	logger  *slog.Logger
}

// NewReader creates a Reader over the given file path.
func NewReader(path string, columns Columns, logger *slog.Logger) *Reader {
	return &Reader{path: path, columns: columns, logger: logger}
}

// Extract reads the whole file into a record slice. Parsing is strict:
// a malformed numeric field aborts with a line-numbered error rather than
// silently skewing the aggregates. Empty numeric fields count as zero.
func (r *Reader) Extract(ctx context.Context) ([]domain.RawRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	src, err := decompressed(f, r.path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // source rows are occasionally ragged

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := resolveColumns(header, r.columns)
	if err != nil {
		return nil, err
	}

	var records []domain.RawRecord
	for line := 2; ; line++ {
		if line%10_000 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		rec, err := cols.record(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	r.logger.Debug("csv input read", "path", r.path, "records", len(records))
	return records, nil
}

// decompressed wraps the file in a decoder chosen by extension.
func decompressed(f *os.File, path string) (io.Reader, error) {
	switch filepath.Ext(path) {
	case ".bz2":
		return bzip2.NewReader(f), nil
	case ".gz":
		return gzip.NewReader(f)
	default:
		return f, nil
	}
}

// columnIndexes holds the resolved position of each required column.
type columnIndexes struct {
	eventType          int
	fatalities         int
	injuries           int
	propertyDamage     int
	propertyDamageCode int
	cropDamage         int
	cropDamageCode     int
}

func resolveColumns(header []string, c Columns) (columnIndexes, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(h)] = i
	}

	var idx columnIndexes
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{c.EventType, &idx.eventType},
		{c.Fatalities, &idx.fatalities},
		{c.Injuries, &idx.injuries},
		{c.PropertyDamage, &idx.propertyDamage},
		{c.PropertyDamageCode, &idx.propertyDamageCode},
		{c.CropDamage, &idx.cropDamage},
		{c.CropDamageCode, &idx.cropDamageCode},
	} {
		i, ok := byName[col.name]
		if !ok {
			return columnIndexes{}, fmt.Errorf("input is missing required column %q", col.name)
		}
		*col.dst = i
	}
	return idx, nil
}

func (idx columnIndexes) record(row []string) (domain.RawRecord, error) {
	fatalities, err := parseCount(get(row, idx.fatalities), "fatalities")
	if err != nil {
		return domain.RawRecord{}, err
	}
	injuries, err := parseCount(get(row, idx.injuries), "injuries")
	if err != nil {
		return domain.RawRecord{}, err
	}
	propDmg, err := parseCoefficient(get(row, idx.propertyDamage), "property damage")
	if err != nil {
		return domain.RawRecord{}, err
	}
	cropDmg, err := parseCoefficient(get(row, idx.cropDamage), "crop damage")
	if err != nil {
		return domain.RawRecord{}, err
	}

	return domain.RawRecord{
		EventLabel:         get(row, idx.eventType),
		Fatalities:         fatalities,
		Injuries:           injuries,
		PropertyDamage:     propDmg,
		PropertyDamageCode: get(row, idx.propertyDamageCode),
		CropDamage:         cropDmg,
		CropDamageCode:     get(row, idx.cropDamageCode),
	}, nil
}

// get returns a trimmed field, tolerating short rows.
func get(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseCount parses a non-negative integer count. The source stores counts
// as floats ("2.00"), so integral floats are accepted.
func parseCount(s, field string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s count %q", field, s)
	}
	if v < 0 || v != float64(int(v)) {
		return 0, fmt.Errorf("invalid %s count %q", field, s)
	}
	return int(v), nil
}

// parseCoefficient parses a non-negative damage coefficient.
func parseCoefficient(s, field string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed %s coefficient %q", field, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("negative %s coefficient %q", field, s)
	}
	return v, nil
}
