package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirseerhq/linear-relay/internal/linear"
)

// Writer streams issues as NDJSON to an io.Writer or file. Each record is
// encoded and flushed immediately, nothing accumulates in memory.
type Writer struct {
	mu        sync.Mutex
	encoder   *json.Encoder
	count     int
	closeFunc func() error
}

// NewWriter creates an NDJSON writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		encoder: json.NewEncoder(w),
	}
}

// NewFileWriter creates an NDJSON writer on a newly created file.
// The caller must call Close when done.
func NewFileWriter(filename string) (*Writer, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Writer{
		encoder:   json.NewEncoder(file),
		closeFunc: file.Close,
	}, nil
}

// Write emits a single issue as one NDJSON line.
func (w *Writer) Write(issue linear.Issue) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(issue); err != nil {
		return fmt.Errorf("failed to write issue %s: %w", issue.Identifier, err)
	}

	w.count++
	return nil
}

// WriteAll emits every issue in order, stopping at the first failure.
func (w *Writer) WriteAll(issues []linear.Issue) error {
	for _, issue := range issues {
		if err := w.Write(issue); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of issues written so far.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying file, if the writer owns one.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closeFunc != nil {
		return w.closeFunc()
	}
	return nil
}
