package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func TestBuyerListScopeSQL(t *testing.T) {
	db := dryRunDB(t)
	f := domain.Filters{
		Search: "ravi",
		City:   domain.CityMohali,
		Status: domain.StatusQualified,
		Page:   3,
		Limit:  10,
		SortBy: "updatedAt", SortOrder: "desc",
	}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Buyer{}).
			Scopes(buyerFilterScope(f), buyerPageScope(f)).
			Find(&[]models.Buyer{})
	})

	for _, want := range []string{
		"full_name LIKE '%ravi%' OR email LIKE '%ravi%' OR phone LIKE '%ravi%' OR notes LIKE '%ravi%'",
		"city = 'Mohali'",
		"status = 'Qualified'",
		`"updated_at" DESC`,
		`"id" DESC`,
		"LIMIT 10",
		"OFFSET 20",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("sql missing %q:\n%s", want, sql)
		}
	}
	if strings.Contains(sql, "property_type") || strings.Contains(sql, "timeline") {
		t.Errorf("unset filters should not appear:\n%s", sql)
	}
}

func TestBuyerListScopeSortAscending(t *testing.T) {
	db := dryRunDB(t)
	f := domain.Filters{Page: 1, Limit: 5, SortBy: "fullName", SortOrder: "asc"}

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return tx.Model(&models.Buyer{}).
			Scopes(buyerFilterScope(f), buyerPageScope(f)).
			Find(&[]models.Buyer{})
	})

	if !strings.Contains(sql, `ORDER BY "full_name","id"`) {
		t.Errorf("unexpected order clause:\n%s", sql)
	}
	if strings.Contains(sql, "WHERE") {
		t.Errorf("no filters should mean no WHERE:\n%s", sql)
	}
}

// recordSQL captures every statement the dry-run db builds, in order.
func recordSQL(t *testing.T, db *gorm.DB) *[]string {
	t.Helper()

	var stmts []string
	rec := func(tx *gorm.DB) {
		stmts = append(stmts, tx.Statement.SQL.String())
	}

	cb := db.Callback()
	for _, err := range []error{
		cb.Query().After("gorm:query").Register("test:record_query", rec),
		cb.Create().After("gorm:create").Register("test:record_create", rec),
		cb.Update().After("gorm:update").Register("test:record_update", rec),
		cb.Delete().After("gorm:delete").Register("test:record_delete", rec),
	} {
		if err != nil {
			t.Fatalf("register callback: %v", err)
		}
	}
	return &stmts
}

func TestLockBuyerSelectsForUpdate(t *testing.T) {
	db := dryRunDB(t)
	stmts := recordSQL(t, db)

	if _, err := lockBuyer(db, uuid.New()); err != nil {
		t.Fatalf("lockBuyer: %v", err)
	}

	if len(*stmts) != 1 {
		t.Fatalf("statements = %q", *stmts)
	}
	sql := (*stmts)[0]
	if !strings.HasPrefix(sql, `SELECT * FROM "buyers" WHERE id = $1`) || !strings.HasSuffix(sql, "FOR UPDATE") {
		t.Errorf("unexpected lock query:\n%s", sql)
	}
}

func TestSaveBuyerChangeSQL(t *testing.T) {
	actor := uuid.New()
	b := &models.Buyer{
		ID:           uuid.New(),
		FullName:     "Ravi Kumar",
		Phone:        "9876543210",
		City:         string(domain.CityMohali),
		PropertyType: "Plot",
		Purpose:      string(domain.PurposeBuy),
		Timeline:     string(domain.TimelineExploring),
		Source:       string(domain.SourceWebsite),
		Status:       "Qualified",
		OwnerID:      actor,
	}

	tests := []struct {
		name string
		diff domain.Diff
		want []string
	}{
		{
			name: "changed fields write history after the row",
			diff: domain.Diff{
				Action: domain.ActionUpdated,
				Fields: map[string]domain.FieldChange{"status": {From: "New", To: "Qualified"}},
			},
			want: []string{`UPDATE "buyers" SET`, `INSERT INTO "buyer_history"`},
		},
		{
			name: "empty diff writes no history",
			diff: domain.Diff{Action: domain.ActionUpdated, Fields: map[string]domain.FieldChange{}},
			want: []string{`UPDATE "buyers" SET`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := dryRunDB(t)
			stmts := recordSQL(t, db)

			if err := saveBuyerChange(db, b, tt.diff, actor); err != nil {
				t.Fatalf("saveBuyerChange: %v", err)
			}

			if len(*stmts) != len(tt.want) {
				t.Fatalf("statements = %q, want %d", *stmts, len(tt.want))
			}
			for i, prefix := range tt.want {
				if !strings.HasPrefix((*stmts)[i], prefix) {
					t.Errorf("statement %d = %q, want prefix %q", i, (*stmts)[i], prefix)
				}
			}
		})
	}
}

func TestDeleteBuyerRowsRemovesHistoryFirst(t *testing.T) {
	db := dryRunDB(t)
	stmts := recordSQL(t, db)

	if err := deleteBuyerRows(db, uuid.New()); err != nil {
		t.Fatalf("deleteBuyerRows: %v", err)
	}

	want := []string{
		`DELETE FROM "buyer_history" WHERE buyer_id = $1`,
		`DELETE FROM "buyers" WHERE id = $1`,
	}
	if len(*stmts) != len(want) {
		t.Fatalf("statements = %q", *stmts)
	}
	for i := range want {
		if (*stmts)[i] != want[i] {
			t.Errorf("statement %d = %q, want %q", i, (*stmts)[i], want[i])
		}
	}
}
