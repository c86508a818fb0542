package ledger

import (
	"sync"

	"github.com/ariapay/ariapay-core/pkg/models"
)

// Store is the in-memory, append-only transaction ledger. Entries are
// kept most recent first; Append is the only mutator. A single lock
// guards the slice so concurrent payment attempts serialize on insertion.
type Store struct {
	mu      sync.RWMutex
	entries []models.Transaction
}

// New creates an empty ledger.
func New() *Store {
	return &Store{}
}

// Append inserts a transaction at the head of the ledger. Uniqueness of
// the id is the caller's responsibility.
func (s *Store) Append(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.Transaction{tx}, s.entries...)
}

// Page returns the requested slice of the ledger along with the total
// count, echoing back page and pageSize. A start index beyond the ledger
// length yields an empty page, never an error.
func (s *Store) Page(page, pageSize int) *models.TransactionPage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := &models.TransactionPage{
		Transactions: []models.Transaction{},
		TotalCount:   len(s.entries),
		Page:         page,
		PageSize:     pageSize,
	}

	start := (page - 1) * pageSize
	if page < 1 || pageSize < 1 || start >= len(s.entries) {
		return result
	}

	end := start + pageSize
	if end > len(s.entries) {
		end = len(s.entries)
	}

	result.Transactions = make([]models.Transaction, end-start)
	copy(result.Transactions, s.entries[start:end])
	return result
}

// Find looks up a transaction by id with a linear scan. An absent id is
// reported with ok=false rather than an error.
func (s *Store) Find(id string) (*models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.entries {
		if s.entries[i].Id == id {
			tx := s.entries[i]
			return &tx, true
		}
	}
	return nil, false
}

// Len returns the current number of ledger entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
