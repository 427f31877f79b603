package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/buildboardhq/buildboard/backend/config"
	"github.com/buildboardhq/buildboard/backend/model"
)

// Store is an in-memory document store, one typed collection per entity.
// In production, this should be replaced with a database; the handlers only
// depend on the methods below, so the swap stays local to this file.
//
// The store is constructed once in main and passed to each handler. There is
// no global instance.
type Store struct {
	mu sync.RWMutex

	users      map[string]*model.User
	shops      map[string]*model.Shop
	builds     map[string]*model.Build
	parts      map[string]*model.Part
	buildParts map[string]*model.BuildPart
	invoices   map[string]*model.Invoice
	leads      map[string]*model.Lead
	waitlist   map[string]*model.WaitlistEntry
	referrals  map[string]*model.Referral

	statusChecks    []*model.StatusCheck
	maxStatusChecks int // 0 = unlimited
}

// NewStore creates an empty store with the given configuration.
func NewStore(cfg *config.StoreConfig) *Store {
	maxStatusChecks := cfg.MaxStatusChecks
	if maxStatusChecks < 0 {
		maxStatusChecks = 0
	}
	slog.Info("store initialized", "max_status_checks", maxStatusChecks)
	return &Store{
		users:           make(map[string]*model.User),
		shops:           make(map[string]*model.Shop),
		builds:          make(map[string]*model.Build),
		parts:           make(map[string]*model.Part),
		buildParts:      make(map[string]*model.BuildPart),
		invoices:        make(map[string]*model.Invoice),
		leads:           make(map[string]*model.Lead),
		waitlist:        make(map[string]*model.WaitlistEntry),
		referrals:       make(map[string]*model.Referral),
		maxStatusChecks: maxStatusChecks,
	}
}

// Users

func (s *Store) SaveUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

func (s *Store) UserByID(id string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id]
}

func (s *Store) UserByEmail(email string) *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

// Shops

func (s *Store) SaveShop(shop *model.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shop.UpdatedAt = time.Now()
	s.shops[shop.ID] = shop
}

func (s *Store) ShopByID(id string) *model.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shops[id]
}

func (s *Store) ShopByOwner(ownerID string) *model.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, shop := range s.shops {
		if shop.OwnerID == ownerID {
			return shop
		}
	}
	return nil
}

func (s *Store) Shops() []*model.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		result = append(result, shop)
	}
	sortByCreatedAt(result, func(shop *model.Shop) time.Time { return shop.CreatedAt })
	return result
}

// Builds

func (s *Store) SaveBuild(b *model.Build) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.UpdatedAt = time.Now()
	s.builds[b.ID] = b
}

func (s *Store) BuildByID(id string) *model.Build {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builds[id]
}

func (s *Store) BuildsByShop(shopID string) []*model.Build {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*model.Build
	for _, b := range s.builds {
		if b.ShopID == shopID {
			result = append(result, b)
		}
	}
	sortByCreatedAt(result, func(b *model.Build) time.Time { return b.CreatedAt })
	return result
}

// PublicBuilds returns builds with public visibility; unlisted builds stay
// reachable by direct ID only.
func (s *Store) PublicBuilds() []*model.Build {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*model.Build
	for _, b := range s.builds {
		if b.Visibility == model.VisibilityPublic {
			result = append(result, b)
		}
	}
	sortByCreatedAt(result, func(b *model.Build) time.Time { return b.CreatedAt })
	return result
}

// Parts

func (s *Store) SavePart(p *model.Part) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parts[p.ID] = p
}

func (s *Store) PartByID(id string) *model.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parts[id]
}

func (s *Store) Parts() []*model.Part {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*model.Part, 0, len(s.parts))
	for _, p := range s.parts {
		result = append(result, p)
	}
	sortByCreatedAt(result, func(p *model.Part) time.Time { return p.CreatedAt })
	return result
}

// Build parts

func (s *Store) SaveBuildPart(bp *model.BuildPart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buildParts[bp.ID] = bp
}

// BuildPartsByBuild returns a build's parts ordered by install index.
func (s *Store) BuildPartsByBuild(buildID string) []*model.BuildPart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*model.BuildPart
	for _, bp := range s.buildParts {
		if bp.BuildID == buildID {
			result = append(result, bp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderIndex < result[j].OrderIndex
	})
	return result
}

// Invoices

func (s *Store) SaveInvoice(inv *model.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices[inv.ID] = inv
}

func (s *Store) InvoiceByID(id string) *model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invoices[id]
}

func (s *Store) SetInvoiceStatus(id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv, ok := s.invoices[id]; ok {
		inv.Status = status
	}
}

// Leads

func (s *Store) SaveLead(l *model.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[l.ID] = l
}

func (s *Store) LeadsByShop(shopID string) []*model.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*model.Lead
	for _, l := range s.leads {
		if l.ShopID == shopID {
			result = append(result, l)
		}
	}
	sortByCreatedAt(result, func(l *model.Lead) time.Time { return l.CreatedAt })
	return result
}

// Marketing

func (s *Store) SaveWaitlistEntry(w *model.WaitlistEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist[w.ID] = w
}

func (s *Store) SaveReferral(r *model.Referral) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.referrals[r.ID] = r
}

// SaveStatusCheck appends a status check, evicting the oldest entries once
// the configured cap is exceeded.
func (s *Store) SaveStatusCheck(sc *model.StatusCheck) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statusChecks = append(s.statusChecks, sc)
	if s.maxStatusChecks > 0 && len(s.statusChecks) > s.maxStatusChecks {
		drop := len(s.statusChecks) - s.maxStatusChecks
		slog.Info("auto-cleaning old status checks", "count", drop)
		s.statusChecks = s.statusChecks[drop:]
	}
}

// StatusChecks returns up to limit status checks in insertion order.
func (s *Store) StatusChecks(limit int) []*model.StatusCheck {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.statusChecks)
	if limit > 0 && n > limit {
		n = limit
	}
	result := make([]*model.StatusCheck, n)
	copy(result, s.statusChecks[:n])
	return result
}

// sortByCreatedAt orders a slice oldest-first for stable listings.
func sortByCreatedAt[T any](items []T, createdAt func(T) time.Time) {
	sort.Slice(items, func(i, j int) bool {
		return createdAt(items[i]).Before(createdAt(items[j]))
	})
}
