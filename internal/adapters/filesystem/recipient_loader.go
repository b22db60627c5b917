package filesystem

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mailmerge.app/internal/ports"
	"mailmerge.app/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Data source kinds accepted by ResolveDataSource
const (
	KindAuto = "auto"
	KindCSV  = "csv"
	KindJSON = "json"
)

// ResolveDataSource picks a file data source by explicit kind or, for "auto", by extension
func ResolveDataSource(path, kind string) (ports.DataSource, error) {
	if path == "" {
		return nil, errors.NewConfigurationError(
			"data source must be a file path (CSV or JSON) or a list of records", nil)
	}

	switch strings.ToLower(kind) {
	case KindCSV:
		return ports.DelimitedFile{Path: path}, nil
	case KindJSON:
		return ports.StructuredFile{Path: path}, nil
	case KindAuto, "":
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unknown data source kind %q, use 'csv', 'json' or 'auto'", kind), nil)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ports.DelimitedFile{Path: path}, nil
	case ".json":
		return ports.StructuredFile{Path: path}, nil
	default:
		return nil, errors.NewConfigurationError("unsupported file format, use CSV or JSON", nil)
	}
}

// RecipientLoaderAdapter implements RecipientLoader for CSV files, JSON files and in-memory records
type RecipientLoaderAdapter struct{}

// NewRecipientLoaderAdapter creates a new recipient loader
func NewRecipientLoaderAdapter() ports.RecipientLoader {
	return &RecipientLoaderAdapter{}
}

// Load returns the records in source order
func (l *RecipientLoaderAdapter) Load(ctx context.Context, source ports.DataSource) ([]ports.Recipient, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewLoadError("recipient load cancelled", err)
	}

	switch s := source.(type) {
	case ports.DelimitedFile:
		return loadCSV(s.Path)
	case ports.StructuredFile:
		return loadJSON(s.Path)
	case ports.InMemory:
		return copyRecords(s.Records), nil
	default:
		return nil, errors.NewConfigurationError(
			"data source must be a file path (CSV or JSON) or a list of records", nil)
	}
}

// loadCSV reads a header row followed by data rows.
// Short rows leave trailing fields absent, extra cells are dropped.
func loadCSV(path string) ([]ports.Recipient, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError("CSV file", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if stderrors.Is(err, io.EOF) {
		return []ports.Recipient{}, nil
	}
	if err != nil {
		return nil, errors.NewLoadError("error loading CSV file", err)
	}

	recipients := []ports.Recipient{}
	for {
		row, err := reader.Read()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.NewLoadError("error loading CSV file", err)
		}

		recipient := make(ports.Recipient, len(header))
		for i, name := range header {
			if i >= len(row) {
				break
			}
			recipient[name] = row[i]
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

// loadJSON reads an array of flat objects. Numbers and booleans keep their JSON text,
// nested values and null are rejected.
func loadJSON(path string) ([]ports.Recipient, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fileError("JSON file", path, err)
	}

	decoder := json.NewDecoder(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	decoder.UseNumber()

	var raw []map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.NewLoadError("error loading JSON file", err)
	}

	recipients := make([]ports.Recipient, 0, len(raw))
	for i, object := range raw {
		if object == nil {
			return nil, errors.NewLoadError(fmt.Sprintf("error loading JSON file: record %d is not an object", i+1), nil)
		}
		recipient := make(ports.Recipient, len(object))
		for key, value := range object {
			text, err := scalarText(value)
			if err != nil {
				return nil, errors.NewLoadError(
					fmt.Sprintf("error loading JSON file: record %d field %q", i+1, key), err)
			}
			recipient[key] = text
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

func scalarText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("null values are not supported")
	default:
		return "", fmt.Errorf("nested %T values are not supported", v)
	}
}

func copyRecords(records []ports.Recipient) []ports.Recipient {
	out := make([]ports.Recipient, 0, len(records))
	for _, record := range records {
		clone := make(ports.Recipient, len(record))
		for k, v := range record {
			clone[k] = v
		}
		out = append(out, clone)
	}
	return out
}
