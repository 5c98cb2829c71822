package session

import (
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/unstakeportal/portal-api-service/internal/balance"
	"github.com/unstakeportal/portal-api-service/internal/chain"
	"github.com/unstakeportal/portal-api-service/internal/ledger"
	"github.com/unstakeportal/portal-api-service/internal/types"
)

// Session is the state object for one connected account: its balance store,
// its withdrawal ledger and the serialization lock that guards both. The
// unstake and claim controllers and the background refresher all mutate
// session state exclusively under this lock, which is what keeps a single
// logical operation in flight per session.
type Session struct {
	mu sync.Mutex

	ID        string
	Account   string
	Balance   *balance.Store
	Ledger    *ledger.WithdrawalLedger
	Token     *chain.TokenInfo
	NetworkID *big.Int
	CreatedAt time.Time
}

func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Manager owns the live sessions, keyed by canonical account address.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// CanonicalAccount normalizes a hex account address to its checksummed form
// so lookups are case-insensitive.
func CanonicalAccount(account string) string {
	return common.HexToAddress(account).Hex()
}

// Put creates a session for the account, replacing any existing one. Replacing
// is deliberate: reconnecting always re-syncs from the chain rather than
// trusting leftover optimistic state.
func (m *Manager) Put(account string, networkID *big.Int, token *chain.TokenInfo) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Account:   CanonicalAccount(account),
		Balance:   balance.New(),
		Ledger:    ledger.New(),
		Token:     token,
		NetworkID: networkID,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Account] = s
	return s
}

func (m *Manager) Get(account string) (*Session, *types.Error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[CanonicalAccount(account)]
	if !ok {
		return nil, types.NewErrorWithMsg(
			http.StatusNotFound, types.NotFound,
			fmt.Sprintf("no active session for account %s", account),
		)
	}
	return s, nil
}

// Remove drops the session at disconnect, destroying its balances and ledger.
func (m *Manager) Remove(account string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, CanonicalAccount(account))
}

// All returns the live sessions, for the background refresher.
func (m *Manager) All() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}
