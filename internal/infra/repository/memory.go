package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/models"
)

// MemoryRepository keeps users, buyers and history in process. It backs
// STORAGE=memory and the usecase tests, and mirrors the gorm adapters'
// filtering, ordering and cascade rules.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]models.User
	buyers  map[uuid.UUID]models.Buyer
	history []models.BuyerHistory
	now     func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  map[uuid.UUID]models.User{},
		buyers: map[uuid.UUID]models.Buyer{},
		now:    time.Now,
	}
}

var (
	_ domain.Repository     = (*MemoryRepository)(nil)
	_ domain.UserRepository = (*MemoryRepository)(nil)
)

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *MemoryRepository) UpsertByEmail(
	_ context.Context,
	email string,
	name string,
) (*models.User, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)

	for id, u := range r.users {
		if u.Email != email {
			continue
		}
		if name != "" && (u.Name == nil || *u.Name != name) {
			u.Name = &name
			u.UpdatedAt = r.now()
			r.users[id] = u
		}
		return &u, nil
	}

	now := r.now()
	u := models.User{ID: uuid.New(), Email: email, CreatedAt: now, UpdatedAt: now}
	if name != "" {
		u.Name = &name
	}
	r.users[u.ID] = u
	return &u, nil
}

func (r *MemoryRepository) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

// --------------------------------------------------
// Buyers
// --------------------------------------------------

func (r *MemoryRepository) CreateBuyer(
	_ context.Context,
	b *models.Buyer,
	diff domain.Diff,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := r.now()
	b.CreatedAt, b.UpdatedAt = now, now

	entry, err := domain.NewHistoryEntry(b.ID, b.OwnerID, diff)
	if err != nil {
		return err
	}
	r.appendHistory(entry)

	r.buyers[b.ID] = detach(b)
	return nil
}

func (r *MemoryRepository) GetBuyer(_ context.Context, id uuid.UUID) (*models.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.buyers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	r.attachOwner(&b)

	var hist []models.BuyerHistory
	for i := len(r.history) - 1; i >= 0 && len(hist) < domain.HistoryPreview; i-- {
		if r.history[i].BuyerID == id {
			hist = append(hist, r.history[i])
		}
	}
	b.History = hist
	return &b, nil
}

func (r *MemoryRepository) ListBuyers(
	_ context.Context,
	f domain.Filters,
) ([]models.Buyer, int64, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Buyer
	for _, b := range r.buyers {
		if matchesFilters(&b, f) {
			matched = append(matched, b)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := sortKey(&matched[i], f.SortBy), sortKey(&matched[j], f.SortBy)
		if a == b {
			a, b = matched[i].ID.String(), matched[j].ID.String()
		}
		if f.Descending() {
			return a > b
		}
		return a < b
	})

	total := int64(len(matched))
	start := min(f.Offset(), len(matched))
	end := min(start+f.Limit, len(matched))

	page := make([]models.Buyer, 0, end-start)
	for _, b := range matched[start:end] {
		r.attachOwner(&b)
		page = append(page, b)
	}
	return page, total, nil
}

func (r *MemoryRepository) UpdateBuyer(
	_ context.Context,
	id uuid.UUID,
	actingUserID uuid.UUID,
	patch domain.Patch,
) (*models.Buyer, domain.Diff, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.buyers[id]
	if !ok {
		return nil, domain.Diff{}, domain.ErrNotFound
	}

	next, diff, err := domain.ApplyPatch(&current, patch, actingUserID)
	if err != nil {
		return nil, domain.Diff{}, err
	}
	next.UpdatedAt = r.now()

	if !diff.Empty() {
		entry, err := domain.NewHistoryEntry(id, actingUserID, diff)
		if err != nil {
			return nil, domain.Diff{}, err
		}
		r.appendHistory(entry)
	}

	r.buyers[id] = detach(next)
	return next, diff, nil
}

func (r *MemoryRepository) DeleteBuyer(_ context.Context, id, actingUserID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.buyers[id]
	if !ok {
		return domain.ErrNotFound
	}
	if b.OwnerID != actingUserID {
		return domain.ErrNotOwner
	}

	delete(r.buyers, id)

	kept := r.history[:0]
	for _, h := range r.history {
		if h.BuyerID != id {
			kept = append(kept, h)
		}
	}
	r.history = kept
	return nil
}

// HistoryFor returns every entry for a buyer, oldest first.
func (r *MemoryRepository) HistoryFor(id uuid.UUID) []models.BuyerHistory {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.BuyerHistory
	for _, h := range r.history {
		if h.BuyerID == id {
			out = append(out, h)
		}
	}
	return out
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (r *MemoryRepository) appendHistory(h *models.BuyerHistory) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.history = append(r.history, *h)
}

func (r *MemoryRepository) attachOwner(b *models.Buyer) {
	if u, ok := r.users[b.OwnerID]; ok {
		b.Owner = &models.User{ID: u.ID, Name: u.Name, Email: u.Email}
	}
}

func detach(b *models.Buyer) models.Buyer {
	out := *b
	out.Owner = nil
	out.History = nil
	return out
}

func matchesFilters(b *models.Buyer, f domain.Filters) bool {
	if f.Search != "" {
		hit := strings.Contains(b.FullName, f.Search) ||
			strings.Contains(b.Phone, f.Search) ||
			(b.Email != nil && strings.Contains(*b.Email, f.Search)) ||
			(b.Notes != nil && strings.Contains(*b.Notes, f.Search))
		if !hit {
			return false
		}
	}
	if f.City != "" && b.City != string(f.City) {
		return false
	}
	if f.PropertyType != "" && b.PropertyType != string(f.PropertyType) {
		return false
	}
	if f.Status != "" && b.Status != string(f.Status) {
		return false
	}
	if f.Timeline != "" && b.Timeline != string(f.Timeline) {
		return false
	}
	return true
}

const sortableTime = "2006-01-02T15:04:05.000000000"

func sortKey(b *models.Buyer, sortBy string) string {
	switch sortBy {
	case "fullName":
		return b.FullName
	case "createdAt":
		return b.CreatedAt.UTC().Format(sortableTime)
	default:
		return b.UpdatedAt.UTC().Format(sortableTime)
	}
}
