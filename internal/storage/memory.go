package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"tokenfolio/internal/domain"
)

// MemStore is a thread-safe in-memory Store implementation. Records are
// held by value and their reference-typed fields are deep-copied at the
// boundary, so callers never share memory with the store.
type MemStore struct {
	mu sync.RWMutex

	users             map[int]domain.User
	assets            map[int]domain.Asset
	compliance        map[int]domain.Compliance
	transactions      map[int]domain.Transaction
	regulatoryUpdates map[int]domain.RegulatoryUpdate

	nextUserID        int
	nextAssetID       int
	nextComplianceID  int
	nextTransactionID int
	nextUpdateID      int
}

// NewMemStore returns an empty in-memory store with id sequences starting at 1.
func NewMemStore() *MemStore {
	return &MemStore{
		users:             make(map[int]domain.User),
		assets:            make(map[int]domain.Asset),
		compliance:        make(map[int]domain.Compliance),
		transactions:      make(map[int]domain.Transaction),
		regulatoryUpdates: make(map[int]domain.RegulatoryUpdate),
		nextUserID:        1,
		nextAssetID:       1,
		nextComplianceID:  1,
		nextTransactionID: 1,
		nextUpdateID:      1,
	}
}

// User operations

func (s *MemStore) GetUser(ctx context.Context, id int) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return u, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (s *MemStore) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}

func (s *MemStore) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextUserID
	s.nextUserID++
	user.CreatedAt = time.Now()
	applyUserDefaults(user)
	s.users[user.ID] = *user
	return nil
}

// Asset operations

func (s *MemStore) GetAsset(ctx context.Context, id int) (domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assets[id]
	if !ok {
		return domain.Asset{}, ErrNotFound
	}
	return cloneAsset(a), nil
}

func (s *MemStore) GetAssetsByUserID(ctx context.Context, userID int) ([]domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := make([]domain.Asset, 0)
	for _, a := range s.assets {
		if a.UserID == userID {
			assets = append(assets, cloneAsset(a))
		}
	}
	sortByID(assets, func(a domain.Asset) int { return a.ID })
	return assets, nil
}

func (s *MemStore) GetAllAssets(ctx context.Context) ([]domain.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	assets := make([]domain.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		assets = append(assets, cloneAsset(a))
	}
	sortByID(assets, func(a domain.Asset) int { return a.ID })
	return assets, nil
}

func (s *MemStore) CreateAsset(ctx context.Context, asset *domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	asset.ID = s.nextAssetID
	s.nextAssetID++
	now := time.Now()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	applyAssetDefaults(asset)
	s.assets[asset.ID] = cloneAsset(*asset)
	return nil
}

func (s *MemStore) UpdateAsset(ctx context.Context, asset *domain.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[asset.ID]; !ok {
		return ErrNotFound
	}
	asset.UpdatedAt = time.Now()
	s.assets[asset.ID] = cloneAsset(*asset)
	return nil
}

func (s *MemStore) DeleteAsset(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[id]; !ok {
		return ErrNotFound
	}
	delete(s.assets, id)
	return nil
}

// Compliance operations

func (s *MemStore) GetCompliance(ctx context.Context, id int) (domain.Compliance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.compliance[id]
	if !ok {
		return domain.Compliance{}, ErrNotFound
	}
	return cloneCompliance(c), nil
}

func (s *MemStore) GetComplianceByAssetID(ctx context.Context, assetID int) (domain.Compliance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.compliance {
		if c.AssetID == assetID {
			return cloneCompliance(c), nil
		}
	}
	return domain.Compliance{}, ErrNotFound
}

func (s *MemStore) CreateCompliance(ctx context.Context, record *domain.Compliance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record.ID = s.nextComplianceID
	s.nextComplianceID++
	record.UpdatedAt = time.Now()
	s.compliance[record.ID] = cloneCompliance(*record)
	return nil
}

func (s *MemStore) UpdateCompliance(ctx context.Context, record *domain.Compliance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.compliance[record.ID]; !ok {
		return ErrNotFound
	}
	record.UpdatedAt = time.Now()
	s.compliance[record.ID] = cloneCompliance(*record)
	return nil
}

// Transaction operations

func (s *MemStore) GetTransaction(ctx context.Context, id int) (domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.transactions[id]
	if !ok {
		return domain.Transaction{}, ErrNotFound
	}
	return cloneTransaction(t), nil
}

func (s *MemStore) GetAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txs := make([]domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		txs = append(txs, cloneTransaction(t))
	}
	sortByID(txs, func(t domain.Transaction) int { return t.ID })
	return txs, nil
}

func (s *MemStore) GetTransactionsByAssetID(ctx context.Context, assetID int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txs := make([]domain.Transaction, 0)
	for _, t := range s.transactions {
		if t.AssetID == assetID {
			txs = append(txs, cloneTransaction(t))
		}
	}
	sortByID(txs, func(t domain.Transaction) int { return t.ID })
	return txs, nil
}

func (s *MemStore) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	txs := make([]domain.Transaction, 0)
	for _, t := range s.transactions {
		if (t.BuyerID != nil && *t.BuyerID == userID) || (t.SellerID != nil && *t.SellerID == userID) {
			txs = append(txs, cloneTransaction(t))
		}
	}
	sortByID(txs, func(t domain.Transaction) int { return t.ID })
	return txs, nil
}

func (s *MemStore) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextTransactionID
	s.nextTransactionID++
	tx.CreatedAt = time.Now()
	s.transactions[tx.ID] = cloneTransaction(*tx)
	return nil
}

func (s *MemStore) UpdateTransaction(ctx context.Context, tx *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[tx.ID]; !ok {
		return ErrNotFound
	}
	s.transactions[tx.ID] = cloneTransaction(*tx)
	return nil
}

// Regulatory update operations

func (s *MemStore) GetRegulatoryUpdate(ctx context.Context, id int) (domain.RegulatoryUpdate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.regulatoryUpdates[id]
	if !ok {
		return domain.RegulatoryUpdate{}, ErrNotFound
	}
	return cloneRegulatoryUpdate(u), nil
}

func (s *MemStore) GetAllRegulatoryUpdates(ctx context.Context) ([]domain.RegulatoryUpdate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	updates := make([]domain.RegulatoryUpdate, 0, len(s.regulatoryUpdates))
	for _, u := range s.regulatoryUpdates {
		updates = append(updates, cloneRegulatoryUpdate(u))
	}
	sortByID(updates, func(u domain.RegulatoryUpdate) int { return u.ID })
	return updates, nil
}

func (s *MemStore) GetRegulatoryUpdatesByJurisdiction(ctx context.Context, jurisdiction string) ([]domain.RegulatoryUpdate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	updates := make([]domain.RegulatoryUpdate, 0)
	for _, u := range s.regulatoryUpdates {
		if u.Jurisdiction == jurisdiction {
			updates = append(updates, cloneRegulatoryUpdate(u))
		}
	}
	sortByID(updates, func(u domain.RegulatoryUpdate) int { return u.ID })
	return updates, nil
}

func (s *MemStore) CreateRegulatoryUpdate(ctx context.Context, update *domain.RegulatoryUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	update.ID = s.nextUpdateID
	s.nextUpdateID++
	if update.PublishDate.IsZero() {
		update.PublishDate = time.Now()
	}
	s.regulatoryUpdates[update.ID] = cloneRegulatoryUpdate(*update)
	return nil
}

// sortByID orders records by primary key. Ids are monotonic and never
// reused, so this is insertion order.
func sortByID[T any](items []T, id func(T) int) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

// The clone helpers deep-copy the reference-typed fields (maps, slices,
// pointers) so records crossing the store boundary never alias caller memory
// in either direction.

func cloneAsset(a domain.Asset) domain.Asset {
	if a.Metadata != nil {
		m := make(domain.JSONMap, len(a.Metadata))
		for k, v := range a.Metadata {
			m[k] = v
		}
		a.Metadata = m
	}
	return a
}

func cloneCompliance(c domain.Compliance) domain.Compliance {
	c.ComplianceScore = cloneIntPtr(c.ComplianceScore)
	return c
}

func cloneTransaction(t domain.Transaction) domain.Transaction {
	t.BuyerID = cloneIntPtr(t.BuyerID)
	t.SellerID = cloneIntPtr(t.SellerID)
	return t
}

func cloneRegulatoryUpdate(u domain.RegulatoryUpdate) domain.RegulatoryUpdate {
	if u.AssetTypesAffected != nil {
		u.AssetTypesAffected = append(domain.StringList(nil), u.AssetTypesAffected...)
	}
	if u.ExpiryDate != nil {
		expiry := *u.ExpiryDate
		u.ExpiryDate = &expiry
	}
	return u
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
