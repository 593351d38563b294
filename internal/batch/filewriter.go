package batch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const headerWidth = 70

// FileWriter writes a simulation report to a plain-text results file in the
// target directory. The file is named after the simulation, optionally
// suffixed with a timestamp so reruns do not overwrite earlier results.
type FileWriter struct {
	Dir         string
	Unique      bool   // append a UTC timestamp to the filename
	Ext         string // defaults to ".txt"
	ShowResults int    // rows to write; 0 writes all
	Sorted      bool   // sort rows by value before writing
	Descending  bool   // sort direction when Sorted

	// Written is incremented per result row, for metrics hookup.
	Written func(rows int)
}

// NewFileWriter returns a writer with the original defaults: unique
// filenames, .txt output, all rows, sorted descending.
func NewFileWriter(dir string) *FileWriter {
	return &FileWriter{
		Dir:        dir,
		Unique:     true,
		Ext:        ".txt",
		Sorted:     true,
		Descending: true,
	}
}

// OnFinish is shaped to plug directly into Runner's onFinish callback.
// Call Write directly when the error matters.
func (w *FileWriter) OnFinish(report *Report) {
	if err := w.Write(report); err != nil {
		slog.Error("results file write failed", slog.String("simulation", report.Name), slog.Any("err", err))
	}
}

// Write renders the report to its results file.
func (w *FileWriter) Write(report *Report) error {
	name := report.Name
	if w.Unique {
		name += time.Now().UTC().Format("2006-01-02T15-04-05")
	}
	ext := w.Ext
	if ext == "" {
		ext = ".txt"
	}
	path := filepath.Join(w.Dir, name+ext)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create results file: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString(report.Name)
	b.WriteString("\n\n")
	b.WriteString(report.Description)
	b.WriteString("\n\n")

	rule := strings.Repeat("*", headerWidth)
	b.WriteString(rule + "\n")
	b.WriteString("Notes:\n\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("Result:\t\tData:\n")

	rows := report.Results
	if w.Sorted {
		rows = report.SortedResults(w.Descending)
	}
	show := w.ShowResults
	if show == 0 || show > len(rows) {
		show = len(rows)
	}
	for i := 0; i < show; i++ {
		fmt.Fprintf(&b, "%.2f\t\t%s\n", rows[i].Value, rows[i].Descriptor)
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("batch: write results file: %w", err)
	}
	if w.Written != nil {
		w.Written(show)
	}
	return nil
}
