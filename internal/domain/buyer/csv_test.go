package buyer

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

func TestParseCSV(t *testing.T) {
	text := "phone , fullName,email,city,propertyType,bhk,purpose,budgetMin,budgetMax,timeline,source,notes,tags,status\r\n" +
		"9876543210, Asha Rani ,,Mohali,Plot,,Buy,,,Exploring,Call,,,\n" +
		"\n" +
		"9876543211,Ravi\n"

	rows, err := ParseCSV(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0]["fullName"] != "Asha Rani" || rows[0]["phone"] != "9876543210" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1]["city"] != "" {
		t.Errorf("missing cells should be empty, got %q", rows[1]["city"])
	}
}

func TestParseCSVHeaderErrors(t *testing.T) {
	if _, err := ParseCSV("\n  \n"); !errors.Is(err, ErrEmptyCSV) {
		t.Errorf("err = %v, want empty", err)
	}
	if _, err := ParseCSV("fullName,phone\nA,1"); !errors.Is(err, ErrInvalidCSV) {
		t.Errorf("err = %v, want invalid header", err)
	}
}

func TestTemplateImportsCleanly(t *testing.T) {
	rows, err := ParseCSV(CSVTemplateBody)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	if _, err := FormFromCSV(rows[0]); err != nil {
		t.Fatalf("template row invalid: %v", err)
	}
}

func TestFormFromCSVCoercion(t *testing.T) {
	row := CSVRow{
		"fullName": "John Doe", "email": "", "phone": "9876543210",
		"city": "Chandigarh", "propertyType": "Apartment", "bhk": "2 BHK",
		"purpose": "Buy", "budgetMin": "5000000", "budgetMax": "",
		"timeline": "0-3 months", "source": "Walk-in", "notes": "", "tags": "", "status": "",
	}

	f, err := FormFromCSV(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.BudgetMin == nil || *f.BudgetMin != 5000000 || f.BudgetMax != nil {
		t.Errorf("budgets = %v %v", f.BudgetMin, f.BudgetMax)
	}
	if *f.BHK != BHKTwo || f.Timeline != TimelineZeroToThree || f.Source != SourceWalkIn {
		t.Errorf("labels not mapped to codes: %+v", f)
	}
	if *f.Status != StatusNew || f.Email != nil {
		t.Errorf("status/email = %v/%v", *f.Status, f.Email)
	}
}

func TestFormFromCSVNonNumericBudget(t *testing.T) {
	row := CSVRow{
		"fullName": "John Doe", "phone": "9876543210", "city": "Mohali",
		"propertyType": "Plot", "purpose": "Buy", "budgetMin": "lots",
		"timeline": "Exploring", "source": "Call",
	}

	_, err := FormFromCSV(row)
	paths := violationPaths(t, err)
	if len(paths) != 1 || paths[0] != "budgetMin" {
		t.Fatalf("paths = %v", paths)
	}
}

func TestWriteExport(t *testing.T) {
	b := models.Buyer{
		ID:           uuid.New(),
		FullName:     `Rahul "RK" Kumar`,
		Phone:        "9876543210",
		City:         "Zirakpur",
		PropertyType: "Villa",
		BHK:          ptr("Three"),
		Purpose:      "Rent",
		BudgetMax:    ptr(25000),
		Timeline:     "MoreThanSix",
		Source:       "WalkIn",
		Tags:         ptr("hot,repeat"),
		Status:       "Visited",
	}

	out := string(WriteExport([]models.Buyer{b}))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], `"fullName","email","phone"`) {
		t.Errorf("header = %s", lines[0])
	}

	want := `"Rahul ""RK"" Kumar","","9876543210","Zirakpur","Villa","3 BHK","Rent","","25000",">6 months","Walk-in","","hot,repeat","Visited"`
	if lines[1] != want {
		t.Errorf("row =\n%s\nwant\n%s", lines[1], want)
	}
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)
	if got := ExportFilename(ts); got != "buyers-export-2026-03-09.csv" {
		t.Errorf("filename = %s", got)
	}
}

func TestFormatBudget(t *testing.T) {
	tests := []struct {
		lo, hi *int
		want   string
	}{
		{nil, nil, "Not specified"},
		{nil, ptr(8000000), "Up to ₹80,00,000"},
		{ptr(500), nil, "From ₹500"},
		{ptr(5000000), ptr(12500000), "₹50,00,000 - ₹1,25,00,000"},
		{ptr(1000), ptr(100000), "₹1,000 - ₹1,00,000"},
	}

	for _, tt := range tests {
		if got := FormatBudget(tt.lo, tt.hi); got != tt.want {
			t.Errorf("FormatBudget = %q, want %q", got, tt.want)
		}
	}
}
