// Package dataset loads record collections for table views.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/uikit/pkg/iojson"
)

// Record is one row of dynamic data. Nested objects are map[string]any.
type Record = map[string]any

// Load reads records from a .json array, a .jsonl/.ndjson stream or a
// .yaml/.yml sequence of mappings.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, path)
}

// Decode reads records from r. The format is chosen by the extension of name.
func Decode(r io.Reader, name string) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var records []Record
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		err = json.Unmarshal(data, &records)
	case ".jsonl", ".ndjson":
		records, err = decodeLines(data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(name), err)
	}

	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func decodeLines(data []byte) ([]Record, error) {
	var records []Record

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		var r Record
		if err := json.Unmarshal(text, &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, r)
	}
	return records, scanner.Err()
}

// Columns returns the dotted paths of every leaf value in records, in the
// order they are first seen. Keys of one object are visited in sorted order.
func Columns(records []Record) []string {
	var (
		cols []string
		seen = map[string]bool{}
	)

	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		for _, k := range keys {
			path := k
			if prefix != "" {
				path = prefix + "." + k
			}
			if nested, ok := m[k].(map[string]any); ok && len(nested) > 0 {
				walk(path, nested)
				continue
			}
			if !seen[path] {
				seen[path] = true
				cols = append(cols, path)
			}
		}
	}

	for _, r := range records {
		walk("", r)
	}
	return cols
}

// NewReader returns a command line reader that decodes datasets from --file
// or piped stdin.
func NewReader(usage string) *iojson.FileReader[[]Record] {
	return &iojson.FileReader[[]Record]{Usage: usage, Decode: Decode}
}
