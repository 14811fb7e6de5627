package buyer

import (
	"net/url"
	"testing"
)

func TestParseFiltersDefaults(t *testing.T) {
	f := ParseFilters(url.Values{})

	if f.Page != 1 || f.Limit != DefaultLimit {
		t.Errorf("page/limit = %d/%d", f.Page, f.Limit)
	}
	if f.SortColumn() != "updated_at" || !f.Descending() {
		t.Errorf("sort = %s desc=%v", f.SortColumn(), f.Descending())
	}
}

func TestParseFiltersBounds(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		export    bool
		wantPage  int
		wantLimit int
	}{
		{"limit capped", "limit=500", false, 1, MaxLimit},
		{"zero limit ignored", "limit=0&page=0", false, 1, DefaultLimit},
		{"garbage ignored", "limit=abc&page=x", false, 1, DefaultLimit},
		{"export default", "", true, 1, ExportLimit},
		{"export capped", "limit=5000&page=2", true, 2, ExportLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)

			var f Filters
			if tt.export {
				f = ParseExportFilters(q)
			} else {
				f = ParseFilters(q)
			}
			if f.Page != tt.wantPage || f.Limit != tt.wantLimit {
				t.Errorf("page/limit = %d/%d, want %d/%d", f.Page, f.Limit, tt.wantPage, tt.wantLimit)
			}
		})
	}
}

func TestParseFiltersEnumsAndSort(t *testing.T) {
	q, _ := url.ParseQuery("city=Mohali&status=Bogus&sortBy=fullName&sortOrder=ASC&search=+ravi+")
	f := ParseFilters(q)

	if f.City != CityMohali {
		t.Errorf("city = %q", f.City)
	}
	if f.Status != "" {
		t.Errorf("unknown status should be ignored, got %q", f.Status)
	}
	if f.SortColumn() != "full_name" || f.Descending() {
		t.Errorf("sort = %s desc=%v", f.SortColumn(), f.Descending())
	}
	if f.Search != "ravi" {
		t.Errorf("search = %q", f.Search)
	}
}

func TestPageCountAndOffset(t *testing.T) {
	if got := PageCount(25, 10); got != 3 {
		t.Errorf("PageCount(25,10) = %d", got)
	}
	if got := PageCount(0, 10); got != 0 {
		t.Errorf("PageCount(0,10) = %d", got)
	}
	if got := (Filters{Page: 3, Limit: 10}).Offset(); got != 20 {
		t.Errorf("Offset = %d", got)
	}
}

func TestEscapeLike(t *testing.T) {
	if got := EscapeLike(`50%_off\`); got != `50\%\_off\\` {
		t.Errorf("EscapeLike = %q", got)
	}
}
