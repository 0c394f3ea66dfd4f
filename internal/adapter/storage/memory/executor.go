package memory

import (
	"context"
	"sync"

	"smart-wallet-core/internal/core/domain"
	"smart-wallet-core/internal/core/ports"
)

// Executor records invoked calls instead of reaching a real account
// contract. Per-target failures can be injected for tests.
type Executor struct {
	mu       sync.Mutex
	calls    []InvokedCall
	failures map[domain.Address]error
}

// InvokedCall is one call the executor received.
type InvokedCall struct {
	Wallet domain.Address
	Call   domain.Call
}

func NewExecutor() *Executor {
	return &Executor{failures: make(map[domain.Address]error)}
}

// FailWith makes every invocation against target return err.
func (e *Executor) FailWith(target domain.Address, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures[target] = err
}

func (e *Executor) Invoke(ctx context.Context, wallet domain.Address, call domain.Call) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.failures[call.Target]; err != nil {
		return nil, err
	}
	e.calls = append(e.calls, InvokedCall{Wallet: wallet, Call: call})
	return nil, nil
}

// Calls returns a snapshot of all successful invocations.
func (e *Executor) Calls() []InvokedCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]InvokedCall, len(e.calls))
	copy(out, e.calls)
	return out
}

// Prober approves every candidate unless an address was explicitly rejected.
type Prober struct {
	mu       sync.Mutex
	rejected map[domain.Address]bool
}

func NewProber() *Prober {
	return &Prober{rejected: make(map[domain.Address]bool)}
}

// Reject makes the prober fail the given address.
func (p *Prober) Reject(addr domain.Address) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rejected[addr] = true
}

func (p *Prober) ExposesOwner(ctx context.Context, addr domain.Address) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.rejected[addr], nil
}

var _ ports.CallExecutor = (*Executor)(nil)
var _ ports.CapabilityProber = (*Prober)(nil)
