package buyer

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

// FirstDataRow is the 1-based line number of the first data row.
const (
	MaxImportRows = 200
	FirstDataRow  = 2
)

var (
	ErrEmptyCSV     = httperr.ErrBusiness("empty_csv")
	ErrInvalidCSV   = httperr.ErrBusiness("invalid_csv_header")
	CSVHeaders      = trackedFields
	CSVTemplateBody = strings.Join(CSVHeaders, ",") + "\n" +
		"John Doe,john@example.com,9876543210,Chandigarh,Apartment,Two,Buy,5000000,8000000,ZeroToThree,Website,Interested in 2BHK,premium,New\n"
)

// CSVRow maps header name to raw cell text.
type CSVRow map[string]string

// ParseCSV splits an import file into rows. Lines are split on commas with
// no quoting support; cells and headers are trimmed and blank lines
// skipped. Every header in CSVHeaders must be present, in any order.
func ParseCSV(text string) ([]CSVRow, error) {
	var lines []string
	for _, l := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCSV
	}

	headers := splitTrim(lines[0])
	present := map[string]bool{}
	for _, h := range headers {
		present[h] = true
	}
	for _, h := range CSVHeaders {
		if !present[h] {
			return nil, ErrInvalidCSV
		}
	}

	rows := make([]CSVRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		values := splitTrim(line)
		row := CSVRow{}
		for i, h := range headers {
			if i < len(values) {
				row[h] = values[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// FormFromCSV coerces a row into a Form and validates it. Enum cells may
// hold either the code or the export label.
func FormFromCSV(row CSVRow) (Form, error) {
	verr := &ValidationError{}
	cell := func(k string) string { return strings.TrimSpace(row[k]) }
	optional := func(k string) *string {
		if v := cell(k); v != "" {
			return &v
		}
		return nil
	}
	number := func(k string) *int {
		v := cell(k)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			verr.add(k, "must be a whole number")
			return nil
		}
		return &n
	}

	f := Form{
		FullName:     cell("fullName"),
		Email:        optional("email"),
		Phone:        cell("phone"),
		City:         City(codeOf(cityOptions, cell("city"))),
		PropertyType: PropertyType(codeOf(propertyTypeOptions, cell("propertyType"))),
		Purpose:      Purpose(codeOf(purposeOptions, cell("purpose"))),
		BudgetMin:    number("budgetMin"),
		BudgetMax:    number("budgetMax"),
		Timeline:     Timeline(codeOf(timelineOptions, cell("timeline"))),
		Source:       Source(codeOf(sourceOptions, cell("source"))),
		Notes:        optional("notes"),
		Tags:         optional("tags"),
	}
	if v := cell("bhk"); v != "" {
		b := BHK(codeOf(bhkOptions, v))
		f.BHK = &b
	}
	if v := cell("status"); v != "" {
		s := Status(codeOf(statusOptions, v))
		f.Status = &s
	}

	f, err := Validate(f)
	if err != nil {
		if ve, ok := err.(*ValidationError); ok {
			verr.Violations = append(verr.Violations, ve.Violations...)
		}
	}
	if e := verr.orNil(); e != nil {
		return f, e
	}
	return f, nil
}

// ===============================
// Export
// ===============================

// WriteExport renders buyers as CSV: header line, one line per record,
// every value double-quoted, enum labels instead of codes.
func WriteExport(buyers []models.Buyer) []byte {
	var sb strings.Builder

	writeLine(&sb, CSVHeaders)
	for i := range buyers {
		sb.WriteByte('\n')
		writeLine(&sb, exportRow(&buyers[i]))
	}
	return []byte(sb.String())
}

func writeLine(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}
}

func exportRow(b *models.Buyer) []string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	num := func(n *int) string {
		if n == nil {
			return ""
		}
		return strconv.Itoa(*n)
	}
	bhk := ""
	if b.BHK != nil {
		bhk = BHK(*b.BHK).Label()
	}

	return []string{
		b.FullName,
		deref(b.Email),
		b.Phone,
		City(b.City).Label(),
		PropertyType(b.PropertyType).Label(),
		bhk,
		Purpose(b.Purpose).Label(),
		num(b.BudgetMin),
		num(b.BudgetMax),
		Timeline(b.Timeline).Label(),
		Source(b.Source).Label(),
		deref(b.Notes),
		deref(b.Tags),
		Status(b.Status).Label(),
	}
}

func ExportFilename(t time.Time) string {
	return "buyers-export-" + t.UTC().Format("2006-01-02") + ".csv"
}
