package auth

import (
	"math/rand"
	"sync"
	"time"

	"github.com/xy-planning-network/waypoint"
)

// An AuthorizationHandler receives the outcome of one pending authorization:
// the authorization code on success, or the error that ended the request,
// such as a cancellation.
type AuthorizationHandler func(code string, err error)

// PendingAuthorizations tracks callbacks for outstanding authorization code
// requests, keyed by the random state value sent along with each
// authorization URL.
//
// PendingAuthorizations is threadsafe.
type PendingAuthorizations struct {
	mu       sync.Mutex
	handlers map[int]AuthorizationHandler
	rand     *rand.Rand
}

func NewPendingAuthorizations() *PendingAuthorizations {
	return &PendingAuthorizations{
		handlers: make(map[int]AuthorizationHandler),
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Add registers handler, returning the state value to associate with it.
//
// The state value is the key FindAndRemove retrieves the handler by,
// so it rides along as the state query parameter in the authorization URL.
// The handler is eventually called exactly once.
func (p *PendingAuthorizations) Add(handler AuthorizationHandler) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	key := p.rand.Int()
	for _, taken := p.handlers[key]; taken; _, taken = p.handlers[key] {
		key = p.rand.Int()
	}

	p.handlers[key] = handler
	return key
}

// FindAndRemove looks up the handler registered under state and removes it,
// so a handler is returned at most once.
func (p *PendingAuthorizations) FindAndRemove(state int) (AuthorizationHandler, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	handler, ok := p.handlers[state]
	if ok {
		delete(p.handlers, state)
	}

	return handler, ok
}

// Close cancels all outstanding handlers,
// calling each with a cancelled status and no code.
func (p *PendingAuthorizations) Close() {
	p.mu.Lock()
	handlers := p.handlers
	p.handlers = make(map[int]AuthorizationHandler)
	p.mu.Unlock()

	for _, handler := range handlers {
		handler("", waypoint.Cancelled("authorization cancelled"))
	}
}
