package buyer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func ptr[T any](v T) *T { return &v }

func validForm() Form {
	return Form{
		FullName:     "John Doe",
		Email:        ptr("john@example.com"),
		Phone:        "9876543210",
		City:         CityChandigarh,
		PropertyType: PropertyApartment,
		BHK:          ptr(BHKTwo),
		Purpose:      PurposeBuy,
		BudgetMin:    ptr(5000000),
		BudgetMax:    ptr(8000000),
		Timeline:     TimelineZeroToThree,
		Source:       SourceWebsite,
		Notes:        ptr("Interested in 2BHK apartment"),
		Tags:         ptr("premium,urgent"),
	}
}

func violationPaths(t *testing.T, err error) []string {
	t.Helper()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	paths := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		paths = append(paths, v.Path)
	}
	return paths
}

func TestValidateAcceptsCompleteForm(t *testing.T) {
	f, err := Validate(validForm())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Status == nil || *f.Status != StatusNew {
		t.Errorf("status should default to New, got %v", f.Status)
	}
}

func TestValidateBHKConditional(t *testing.T) {
	tests := []struct {
		name    string
		pt      PropertyType
		bhk     *BHK
		wantErr bool
	}{
		{"apartment without bhk", PropertyApartment, nil, true},
		{"villa without bhk", PropertyVilla, nil, true},
		{"apartment with bhk", PropertyApartment, ptr(BHKStudio), false},
		{"plot without bhk", PropertyPlot, nil, false},
		{"office without bhk", PropertyOffice, nil, false},
		{"retail with bhk is dropped", PropertyRetail, ptr(BHKOne), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.PropertyType = tt.pt
			f.BHK = tt.bhk

			got, err := Validate(f)
			if tt.wantErr {
				paths := violationPaths(t, err)
				if len(paths) != 1 || paths[0] != "bhk" {
					t.Fatalf("paths = %v, want [bhk]", paths)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.pt.IsResidential() && got.BHK != nil {
				t.Errorf("bhk should be dropped for %s", tt.pt)
			}
		})
	}
}

func TestValidateBudgetOrdering(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		wantErr  bool
	}{
		{"max below min", ptr(8000000), ptr(5000000), true},
		{"equal", ptr(100), ptr(100), false},
		{"only min", ptr(100), nil, false},
		{"only max", nil, ptr(100), false},
		{"neither", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.BudgetMin, f.BudgetMax = tt.min, tt.max

			_, err := Validate(f)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			paths := violationPaths(t, err)
			if len(paths) != 1 || paths[0] != "budgetMax" {
				t.Fatalf("paths = %v, want [budgetMax]", paths)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"9876543210", true},
		{"123456789012345", true},
		{"123", false},
		{"1234567890123456", false},
		{"98765-43210", false},
		{"+919876543210", false},
	}

	for _, tt := range tests {
		f := validForm()
		f.Phone = tt.phone

		_, err := Validate(f)
		if (err == nil) != tt.ok {
			t.Errorf("phone %q: err = %v, want ok=%v", tt.phone, err, tt.ok)
		}
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	f := validForm()
	f.FullName = "J"
	f.Email = ptr("not-an-email")
	f.Phone = "12"
	f.City = "Delhi"
	f.BHK = nil
	f.BudgetMin, f.BudgetMax = ptr(10), ptr(5)

	_, err := Validate(f)
	paths := violationPaths(t, err)

	want := []string{"fullName", "email", "phone", "city", "bhk", "budgetMax"}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
}

func TestValidateMessages(t *testing.T) {
	f := validForm()
	f.FullName = "J"
	f.Email = ptr("bad")

	_, err := Validate(f)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error")
	}
	if verr.Violations[0].Message != "Full name must be at least 2 characters" {
		t.Errorf("message = %q", verr.Violations[0].Message)
	}
	if verr.Violations[1].Message != "Invalid email address" {
		t.Errorf("message = %q", verr.Violations[1].Message)
	}
}

func TestValidateNormalisesEmptyOptionals(t *testing.T) {
	f := validForm()
	f.Email = ptr("")
	f.Notes = ptr("")
	f.Tags = ptr("  ")

	got, err := Validate(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != nil || got.Notes != nil || got.Tags != nil {
		t.Errorf("empty optionals should be nil: %+v", got)
	}
}

func TestValidateNotesLength(t *testing.T) {
	f := validForm()
	f.Notes = ptr(strings.Repeat("a", 1001))

	_, err := Validate(f)
	paths := violationPaths(t, err)
	if len(paths) != 1 || paths[0] != "notes" {
		t.Fatalf("paths = %v", paths)
	}
}

func TestValidateRecordRequiresIdentity(t *testing.T) {
	f, _ := Validate(validForm())
	rec := f.ToModel(uuid.Nil)

	paths := violationPaths(t, ValidateRecord(rec))
	if len(paths) != 2 || paths[0] != "id" || paths[1] != "ownerId" {
		t.Fatalf("paths = %v", paths)
	}

	rec.ID = uuid.New()
	rec.OwnerID = uuid.New()
	if err := ValidateRecord(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
