// Package dataset loads the state-level demographic and health table.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/iafilius/HealthScatter/src/logging"
)

// DefaultFile is the data file looked up when no path is configured.
const DefaultFile = "assets/data/data.csv"

var (
	// ErrNoHeader is returned for an empty input.
	ErrNoHeader = errors.New("dataset: missing header row")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("dataset: missing required column")
)

// columns holds the header index of each required column.
type columns struct {
	state, abbr int
	metrics     [numMetrics]int
}

func indexHeader(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		k := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	var c columns
	var missing []string
	lookup := func(name string) int {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}
	c.state = lookup("state")
	c.abbr = lookup("abbr")
	for m := Metric(0); m < numMetrics; m++ {
		c.metrics[m] = lookup(m.String())
	}
	if len(missing) > 0 {
		return c, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return c, nil
}

// decimal matches plain decimal notation with an optional exponent. Hex
// literals, underscores and the inf/nan spellings strconv accepts do not match.
var decimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// parseNumber coerces a cell to a finite float. Empty, non-decimal and
// out-of-range cells are NaN.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if !decimal.MatchString(s) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// Parse reads CSV rows from r. Extra columns are ignored and non-numeric
// metric cells become NaN without an error.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}
	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}
	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		rec := Record{State: cell(row, cols.state), Abbr: cell(row, cols.abbr)}
		for m := Metric(0); m < numMetrics; m++ {
			rec.set(m, parseNumber(cell(row, cols.metrics[m])))
		}
		out = append(out, rec)
	}
	return out, nil
}

// Load opens and parses the CSV file at path.
func Load(path string) ([]Record, error) {
	defer logging.TimeTrack(time.Now(), "[dataset] load "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()
	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for m := Metric(0); m < numMetrics; m++ {
		if n := CountNaN(recs, m); n > 0 {
			logging.Warnf("[dataset] %s: %d of %d %s values are not numeric", path, n, len(recs), m)
		}
	}
	logging.Infof("[dataset] loaded %d records from %s", len(recs), path)
	return recs, nil
}
