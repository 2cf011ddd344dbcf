package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/quickmath/config"
)

// OutputManager writes report tables as CSV files into a directory.
type OutputManager struct {
	dir          string
	accuracyFile *os.File
	prngFile     *os.File
	hashFile     *os.File

	// Track if headers have been written
	accuracyHeaderWritten bool
	prngHeaderWritten     bool
	hashHeaderWritten     bool
}

// NewOutputManager creates the output directory and its CSV files.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "accuracy.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating accuracy.csv: %w", err)
	}
	om.accuracyFile = f

	f, err = os.Create(filepath.Join(dir, "prng.csv"))
	if err != nil {
		om.accuracyFile.Close()
		return nil, fmt.Errorf("creating prng.csv: %w", err)
	}
	om.prngFile = f

	f, err = os.Create(filepath.Join(dir, "hash.csv"))
	if err != nil {
		om.accuracyFile.Close()
		om.prngFile.Close()
		return nil, fmt.Errorf("creating hash.csv: %w", err)
	}
	om.hashFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// writeRows marshals rows to f, including the header only on the first call.
func writeRows[T any](f *os.File, headerWritten *bool, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if !*headerWritten {
		if err := gocsv.Marshal(rows, f); err != nil {
			return err
		}
		*headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(rows, f)
}

// WriteAccuracy appends approximation rows to accuracy.csv.
func (om *OutputManager) WriteAccuracy(rows ...ApproxRow) error {
	if om == nil {
		return nil
	}
	if err := writeRows(om.accuracyFile, &om.accuracyHeaderWritten, rows); err != nil {
		return fmt.Errorf("writing accuracy: %w", err)
	}
	return nil
}

// WritePRNG appends generator rows to prng.csv.
func (om *OutputManager) WritePRNG(rows ...PRNGRow) error {
	if om == nil {
		return nil
	}
	if err := writeRows(om.prngFile, &om.prngHeaderWritten, rows); err != nil {
		return fmt.Errorf("writing prng: %w", err)
	}
	return nil
}

// WriteHash appends hash distribution rows to hash.csv.
func (om *OutputManager) WriteHash(rows ...HashRow) error {
	if om == nil {
		return nil
	}
	if err := writeRows(om.hashFile, &om.hashHeaderWritten, rows); err != nil {
		return fmt.Errorf("writing hash: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, f := range []*os.File{om.accuracyFile, om.prngFile, om.hashFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
