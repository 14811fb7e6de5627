package buyer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

// Diff is the payload of one history entry.
type Diff struct {
	Action Action                 `json:"action"`
	Fields map[string]FieldChange `json:"fields"`
}

func (d Diff) Empty() bool {
	return len(d.Fields) == 0
}

// trackedFields is the order fields are compared and exported in.
var trackedFields = []string{
	"fullName", "email", "phone", "city", "propertyType", "bhk", "purpose",
	"budgetMin", "budgetMax", "timeline", "source", "notes", "tags", "status",
}

func fieldValues(b *models.Buyer) map[string]any {
	return map[string]any{
		"fullName":     b.FullName,
		"email":        strOrNil(b.Email),
		"phone":        b.Phone,
		"city":         b.City,
		"propertyType": b.PropertyType,
		"bhk":          strOrNil(b.BHK),
		"purpose":      b.Purpose,
		"budgetMin":    intOrNil(b.BudgetMin),
		"budgetMax":    intOrNil(b.BudgetMax),
		"timeline":     b.Timeline,
		"source":       b.Source,
		"notes":        strOrNil(b.Notes),
		"tags":         strOrNil(b.Tags),
		"status":       b.Status,
	}
}

func strOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func intOrNil(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}

// NewCreatedDiff records every present field of a new record with a nil
// "from" side.
func NewCreatedDiff(b *models.Buyer) Diff {
	d := Diff{Action: ActionCreated, Fields: map[string]FieldChange{}}
	for k, v := range fieldValues(b) {
		if v == nil {
			continue
		}
		d.Fields[k] = FieldChange{From: nil, To: v}
	}
	return d
}

// NewUpdatedDiff lists the fields whose value differs between before and
// after.
func NewUpdatedDiff(before, after *models.Buyer) Diff {
	d := Diff{Action: ActionUpdated, Fields: map[string]FieldChange{}}
	from, to := fieldValues(before), fieldValues(after)
	for _, k := range trackedFields {
		if from[k] != to[k] {
			d.Fields[k] = FieldChange{From: from[k], To: to[k]}
		}
	}
	return d
}

// NewHistoryEntry encodes d into an append-only history row.
func NewHistoryEntry(buyerID, changedBy uuid.UUID, d Diff) (*models.BuyerHistory, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode diff: %w", err)
	}
	return &models.BuyerHistory{
		BuyerID:   buyerID,
		ChangedBy: changedBy,
		ChangedAt: time.Now(),
		Diff:      datatypes.JSON(raw),
	}, nil
}

// DecodeDiff parses a stored diff and rejects unknown actions.
func DecodeDiff(raw []byte) (Diff, error) {
	var d Diff

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&d); err != nil {
		return Diff{}, fmt.Errorf("decode diff: %w", err)
	}

	switch d.Action {
	case ActionCreated, ActionUpdated:
	default:
		return Diff{}, fmt.Errorf("decode diff: unknown action %q", d.Action)
	}

	if d.Fields == nil {
		d.Fields = map[string]FieldChange{}
	}
	return d, nil
}
