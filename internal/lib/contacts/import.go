package contacts

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dpup/prefab/logging"
)

// column positions for a headerless file: name, phone, village, category
var defaultColumns = map[string]int{"name": 0, "phone": 1, "village": 2, "category": 3}

// ImportCSV adds every row of a contacts CSV. A first row naming a name and a
// phone column is read as a header; otherwise columns are name, phone,
// village, category. Rows already in the directory, or repeated in the file,
// count as duplicates. Bad rows are reported and skipped. Only an unreadable
// input fails the whole import.
func (d *Directory) ImportCSV(ctx context.Context, r io.Reader, addedBy string) (ImportResult, error) {
	ctx = logging.EnsureLogger(ctx)
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := ImportResult{Errors: []ImportError{}}
	columns := defaultColumns
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if !errors.As(err, &pe) {
				return result, fmt.Errorf("failed to read contacts csv: %w", err)
			}
			result.Failed++
			result.Errors = append(result.Errors, ImportError{Row: pe.StartLine, Error: pe.Err.Error()})
			continue
		}
		row, _ := reader.FieldPos(0)
		if blank(record) {
			continue
		}
		if first {
			first = false
			if header, ok := headerColumns(record); ok {
				columns = header
				continue
			}
		}

		field := func(name string) string {
			i, ok := columns[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		_, err = d.Add(Draft{
			Name:              field("name"),
			PhoneNumber:       field("phone"),
			Village:           field("village"),
			Category:          Category(field("category")),
			AlternatePhone:    field("alternate_phone"),
			Email:             field("email"),
			Region:            field("region"),
			PreferredLanguage: Language(field("language")),
			Notes:             field("notes"),
			AddedBy:           addedBy,
		})
		switch {
		case err == nil:
			result.Successful++
		case errors.Is(err, ErrDuplicateContact):
			result.Duplicates++
		default:
			result.Failed++
			result.Errors = append(result.Errors, ImportError{Row: row, Error: strings.TrimPrefix(err.Error(), ErrInvalidContact.Error()+": ")})
		}
	}

	logging.Infow(ctx, "Contacts imported",
		"successful", result.Successful, "failed", result.Failed, "duplicates", result.Duplicates, "added_by", addedBy)
	return result, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// headerColumns maps a header row to field positions. A header needs both a
// name and a phone column.
func headerColumns(record []string) (map[string]int, bool) {
	cols := map[string]int{}
	for i, raw := range record {
		h := strings.ToLower(strings.TrimSpace(raw))
		h = strings.NewReplacer(" ", "_", "-", "_").Replace(h)
		var key string
		switch {
		case h == "name" || h == "full_name":
			key = "name"
		case strings.Contains(h, "phone") && (strings.Contains(h, "alt") || strings.Contains(h, "second")):
			key = "alternate_phone"
		case strings.Contains(h, "phone") || h == "mobile":
			key = "phone"
		case h == "village":
			key = "village"
		case h == "category":
			key = "category"
		case h == "email":
			key = "email"
		case h == "region":
			key = "region"
		case strings.Contains(h, "language"):
			key = "language"
		case h == "notes":
			key = "notes"
		default:
			continue
		}
		if _, seen := cols[key]; !seen {
			cols[key] = i
		}
	}
	_, hasName := cols["name"]
	_, hasPhone := cols["phone"]
	return cols, hasName && hasPhone
}
