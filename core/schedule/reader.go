package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/ratiba/core"
)

// File-level failures; any of these aborts the whole upload with zero events.
var (
	ErrEmptyFile       = errors.New("the file is empty")
	ErrUnsupportedFile = errors.New("unsupported file type; upload a .xlsx or .csv file")
)

var requiredColumns = []string{colSectionDate, colStartTime, colEndTime}

// ReadFile dispatches on the uploaded file's extension and produces the raw
// rows of its first (or only) table.
func ReadFile(name string, r io.Reader) ([]RawRow, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return ReadCSV(r)
	case ".xlsx", ".xlsm", ".xltx", ".xls":
		return ReadXLSX(r)
	}
	return nil, ErrUnsupportedFile
}

// ReadCSV reads a delimited-text source: a header row followed by data rows,
// every cell a string. Ragged rows are tolerated; missing trailing cells are
// simply absent from the RawRow.
func ReadCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading csv")
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	return buildRows(records[0], records[1:])
}

// ReadXLSX reads the first sheet of a spreadsheet workbook. Raw cell values
// are requested so date cells surface as Excel serial strings; cells holding
// a fractional serial (times, datetimes) are converted to time.Time.
func ReadXLSX(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}
	records, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Wrap(err, "reading workbook rows")
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := buildRows(records[0], records[1:])
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		for key, v := range row {
			if s, ok := v.(string); ok {
				row[key] = xlsxCellValue(s)
			}
		}
	}
	return rows, nil
}

// xlsxCellValue upgrades raw fractional serials to native datetimes; whole
// serials stay strings for the date combiner.
func xlsxCellValue(raw string) interface{} {
	if !strings.Contains(raw, ".") {
		return raw
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil && serial > 0 && serial < excelSerialMax {
		return ExcelSerialToTime(serial)
	}
	return raw
}

// buildRows keys every data row by its lower-cased trimmed header, after
// checking that all required columns are present.
func buildRows(header []string, records [][]string) ([]RawRow, error) {
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = core.CleanString(h, true /* lower */)
	}
	if err := checkRequiredColumns(keys); err != nil {
		return nil, err
	}

	rows := make([]RawRow, 0, len(records))
	for _, record := range records {
		row := make(RawRow, len(keys))
		for i, key := range keys {
			if key == "" || i >= len(record) {
				continue
			}
			row[key] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func checkRequiredColumns(keys []string) error {
	present := make(map[string]bool, len(keys))
	for _, key := range keys {
		present[key] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			msg := strings.Title(col)
			if hint := closestHeader(col, keys); hint != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}
			missing = append(missing, msg)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// closestHeader suggests the nearest actual header for a missing required
// column, when one is reasonably similar.
func closestHeader(want string, keys []string) string {
	var best string
	var bestRatio float64
	for _, key := range keys {
		if key == "" {
			continue
		}
		ratio := difflib.NewMatcher(strings.Split(want, ""), strings.Split(key, "")).QuickRatio()
		if ratio > bestRatio {
			best, bestRatio = key, ratio
		}
	}
	if bestRatio >= 0.6 {
		return best
	}
	return ""
}
