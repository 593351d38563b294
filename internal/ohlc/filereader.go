package ohlc

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// FileReader parses line-oriented OHLC data. Each line is expected to
// hold, in order: date, open, high, low, close and (unless disabled)
// volume, separated by the configured delimiter.
type FileReader struct {
	// Path to the source file.
	Path string

	// SkipLines is the number of leading lines to ignore, e.g. 1 for a
	// column-header row.
	SkipLines int

	// Delimiter separates fields on a line. Empty means any run of
	// whitespace.
	Delimiter string

	// DateLayout is the time.Parse layout for the date column.
	// Empty defaults to "2006-01-02".
	DateLayout string

	// NoVolume marks input without a volume column.
	NoVolume bool

	// Descending marks input in newest-first order. Bars are always
	// returned oldest-first.
	Descending bool
}

// Bars reads and parses the whole file.
func (f *FileReader) Bars() ([]Bar, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("ohlc: open %s: %w", f.Path, err)
	}
	defer file.Close()

	layout := f.DateLayout
	if layout == "" {
		layout = "2006-01-02"
	}
	wantFields := 6
	if f.NoVolume {
		wantFields = 5
	}

	var bars []Bar
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo <= f.SkipLines {
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		var cols []string
		if f.Delimiter == "" {
			cols = strings.Fields(line)
		} else {
			cols = strings.Split(line, f.Delimiter)
		}
		if len(cols) != wantFields {
			return nil, fmt.Errorf("ohlc: %s line %d: %d fields, want %d", f.Path, lineNo, len(cols), wantFields)
		}

		bar, err := parseBar(cols, layout, !f.NoVolume)
		if err != nil {
			return nil, fmt.Errorf("ohlc: %s line %d: %w", f.Path, lineNo, err)
		}
		bars = append(bars, bar)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ohlc: read %s: %w", f.Path, err)
	}

	if f.Descending {
		for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
			bars[i], bars[j] = bars[j], bars[i]
		}
	}
	return bars, nil
}

func parseBar(cols []string, layout string, hasVolume bool) (Bar, error) {
	var bar Bar
	var err error

	if bar.Date, err = time.Parse(layout, strings.TrimSpace(cols[0])); err != nil {
		return bar, fmt.Errorf("bad date %q: %w", cols[0], err)
	}
	if bar.Open, err = parsePrice("open", cols[1]); err != nil {
		return bar, err
	}
	if bar.High, err = parsePrice("high", cols[2]); err != nil {
		return bar, err
	}
	if bar.Low, err = parsePrice("low", cols[3]); err != nil {
		return bar, err
	}
	if bar.Close, err = parsePrice("close", cols[4]); err != nil {
		return bar, err
	}
	if hasVolume {
		if bar.Volume, err = parsePrice("volume", cols[5]); err != nil {
			return bar, err
		}
	}
	return bar, nil
}

func parsePrice(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, raw, err)
	}
	return v, nil
}
