package advisor

import (
	"sync"
	"time"
)

// historyLimit caps the ephemeral chat history at the last 20 messages.
const historyLimit = 20

const (
	RoleUser      = "user"
	RoleAssistant = "ai"
)

type Message struct {
	Role string    `json:"type"`
	Text string    `json:"message"`
	At   time.Time `json:"timestamp"`
}

// historyStore holds per-user chat history in memory only. It is never
// written to the ledger store and disappears on restart.
type historyStore struct {
	mu    sync.Mutex
	byUID map[string][]Message
}

func newHistoryStore() *historyStore {
	return &historyStore{byUID: make(map[string][]Message)}
}

func (h *historyStore) Append(userID string, messages ...Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := append(h.byUID[userID], messages...)
	if len(list) > historyLimit {
		list = list[len(list)-historyLimit:]
	}
	h.byUID[userID] = list
}

func (h *historyStore) Get(userID string) []Message {
	h.mu.Lock()
	defer h.mu.Unlock()

	list := h.byUID[userID]
	cloned := make([]Message, len(list))
	copy(cloned, list)
	return cloned
}

func (h *historyStore) Clear(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.byUID, userID)
}
