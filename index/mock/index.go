package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/poiesic/laureate/index"
)

// MockIndex is a test double for index.Index. It stores documents in memory
// and allows custom behavior injection via function fields.
type MockIndex struct {
	// AddFunc is called by Add if set.
	AddFunc func(ctx context.Context, docs []index.Document) error

	// QueryFunc is called by Query if set. If nil, the default ranks stored
	// documents by naive token overlap with the query text.
	QueryFunc func(ctx context.Context, text string, k int) ([]index.Result, error)

	mu         sync.Mutex
	docs       []index.Document
	addCalls   int
	queryCalls int
	wipeCalls  int
}

var _ index.Index = (*MockIndex)(nil)

// NewMockIndex creates an empty in-memory mock index.
// Note: Returns concrete type to allow test assertions.
func NewMockIndex() *MockIndex {
	return &MockIndex{}
}

// Add stores the batch, or delegates to AddFunc when set.
func (m *MockIndex) Add(ctx context.Context, docs []index.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addCalls++

	if m.AddFunc != nil {
		return m.AddFunc(ctx, docs)
	}

	m.docs = append(m.docs, docs...)
	return nil
}

// Query ranks stored documents by shared lowercase tokens with the query,
// falling back to insertion order on ties. Deterministic and embedding-free.
func (m *MockIndex) Query(ctx context.Context, text string, k int) ([]index.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryCalls++

	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, text, k)
	}

	if len(m.docs) == 0 || k <= 0 {
		return nil, nil
	}

	queryTokens := tokenSet(text)
	type scored struct {
		doc   index.Document
		score float32
		order int
	}
	ranked := make([]scored, len(m.docs))
	for i, doc := range m.docs {
		ranked[i] = scored{doc: doc, score: overlapScore(queryTokens, doc.Text), order: i}
	}

	// Insertion sort keeps ties stable without pulling in sort for a mock.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].score > ranked[j-1].score; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if k > len(ranked) {
		k = len(ranked)
	}
	results := make([]index.Result, k)
	for i := 0; i < k; i++ {
		results[i] = index.Result{Document: ranked[i].doc, Similarity: ranked[i].score}
	}
	return results, nil
}

// Wipe clears the stored documents.
func (m *MockIndex) Wipe(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wipeCalls++
	m.docs = nil
	return nil
}

// Count returns the number of stored documents.
func (m *MockIndex) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

// Close is a no-op.
func (m *MockIndex) Close() error {
	return nil
}

// AddCalls returns how many times Add was invoked.
func (m *MockIndex) AddCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addCalls
}

// QueryCalls returns how many times Query was invoked.
func (m *MockIndex) QueryCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.queryCalls
}

// WipeCalls returns how many times Wipe was invoked.
func (m *MockIndex) WipeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wipeCalls
}

// Documents returns a copy of the stored documents in insertion order.
func (m *MockIndex) Documents() []index.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]index.Document, len(m.docs))
	copy(out, m.docs)
	return out
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		set[strings.Trim(tok, ".,!?;:'\"-()[]{}")] = true
	}
	return set
}

func overlapScore(queryTokens map[string]bool, text string) float32 {
	if len(queryTokens) == 0 {
		return 0
	}
	var shared int
	for tok := range tokenSet(text) {
		if queryTokens[tok] {
			shared++
		}
	}
	return float32(shared) / float32(len(queryTokens))
}
