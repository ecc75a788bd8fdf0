package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// Format is an on-disk table encoding.
type Format string

// Supported formats; the value doubles as the file extension.
const (
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// gzipExt is appended to compressed report files.
const gzipExt = ".gz"

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case CSV, JSON, YAML, TOML:
		return f, nil
	default:
		return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
	}
}

// Encode writes t to w in format f.
// CSV emits the header line followed by one record per row; the structured
// formats emit a {name, header, rows} document.
func Encode(w io.Writer, t *Table, f Format) error {
	switch f {
	case CSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(t.Header); err != nil {
			return err
		}
		if err := cw.WriteAll(t.Rows); err != nil {
			return err
		}
		return cw.Error()
	case JSON:
		b, err := sonic.ConfigStd.MarshalIndent(t, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	case YAML:
		b, err := yaml.Marshal(t)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case TOML:
		return toml.NewEncoder(w).Encode(t)
	default:
		return fmt.Errorf("Encode(%q): %w", f, ErrUnknownFormat)
	}
}

// Exporter writes tables under a directory.
type Exporter struct {
	dir      string
	format   Format
	compress bool
	log      *zap.Logger
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithFormat selects the encoding (default CSV).
func WithFormat(f Format) ExporterOption { return func(e *Exporter) { e.format = f } }

// WithCompression gzips every file and appends ".gz" to its name.
func WithCompression(on bool) ExporterOption { return func(e *Exporter) { e.compress = on } }

// WithLogger attaches a logger; the default discards.
func WithLogger(l *zap.Logger) ExporterOption {
	return func(e *Exporter) {
		if l != nil {
			e.log = l
		}
	}
}

// NewExporter returns an Exporter rooted at dir ("" means the working directory).
func NewExporter(dir string, opts ...ExporterOption) (*Exporter, error) {
	e := &Exporter{dir: dir, format: CSV, log: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	if _, err := ParseFormat(string(e.format)); err != nil {
		return nil, err
	}
	if e.dir == "" {
		e.dir = "."
	}

	return e, nil
}

// Format returns the configured encoding.
func (e *Exporter) Format() Format { return e.format }

// Path returns the file Export would write for a table named name.
func (e *Exporter) Path(name string) string {
	p := filepath.Join(e.dir, name+"."+string(e.format))
	if e.compress {
		p += gzipExt
	}

	return p
}

// Export writes t, replacing any previous file, and returns its path.
func (e *Exporter) Export(t *Table) (path string, err error) {
	if t.Name == "" {
		return "", ErrEmptyName
	}
	if err = os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("Export(%s): %w", t.Name, err)
	}

	path = e.Path(t.Name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("Export(%s): %w", t.Name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("Export(%s): %w", t.Name, cerr)
		}
	}()

	var w io.Writer = f
	var zw *gzip.Writer
	if e.compress {
		zw = gzip.NewWriter(f)
		w = zw
	}
	if err = Encode(w, t, e.format); err != nil {
		return "", fmt.Errorf("Export(%s): %w", t.Name, err)
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return "", fmt.Errorf("Export(%s): %w", t.Name, err)
		}
	}

	e.log.Debug("report written",
		zap.String("path", path),
		zap.String("format", string(e.format)),
		zap.Int("rows", len(t.Rows)))

	return path, nil
}
