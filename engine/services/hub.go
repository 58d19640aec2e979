package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/lixenwraith/vi-skate/engine"
)

var (
	ErrDuplicateService   = errors.New("service already registered")
	ErrMissingDependency  = errors.New("depends on unregistered service")
	ErrCircularDependency = errors.New("circular service dependency")
)

// Hub owns the services of one world and drives their lifecycle in dependency order
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string // resolved by InitAll, reset by Register
	running  []string // started services, in start order
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service; names must be unique
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, dup := h.services[name]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateService, name)
	}
	h.services[name] = svc
	h.order = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	svc, ok := h.services[name]
	return svc, ok
}

// MustGet retrieves a service as T, panicking when missing or of another type
func MustGet[T any](h *Hub, name string) T {
	svc, ok := h.Get(name)
	if !ok {
		panic(fmt.Sprintf("service not found: %s", name))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("service %s: type mismatch, got %T", name, svc))
	}
	return typed
}

// InitAll resolves the dependency order and initializes every service against world
// A failing Init stops the services initialized before it
func (h *Hub) InitAll(world *engine.World) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolve()
	if err != nil {
		return err
	}
	h.order = order

	for i, name := range order {
		if err := h.services[name].Init(world); err != nil {
			h.stopReverse(order[:i])
			return fmt.Errorf("service %s init failed: %w", name, err)
		}
	}
	return nil
}

// StartAll starts every service in dependency order
// A failing Start stops the services started before it
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.running = h.running[:0]
	for _, name := range h.order {
		if err := h.services[name].Start(); err != nil {
			h.stopReverse(h.running)
			h.running = nil
			return fmt.Errorf("service %s start failed: %w", name, err)
		}
		h.running = append(h.running, name)
	}
	return nil
}

// StopAll stops running services in reverse start order
// Every service gets Stop called; the errors are joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	err := h.stopReverse(h.running)
	h.running = nil
	return err
}

// Order returns the resolved start order, nil before InitAll
func (h *Hub) Order() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.order)
}

// Names returns all registered service names, sorted
func (h *Hub) Names() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.sortedNames()
}

func (h *Hub) sortedNames() []string {
	names := make([]string, 0, len(h.services))
	for name := range h.services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (h *Hub) stopReverse(names []string) error {
	var errs []error
	for i := len(names) - 1; i >= 0; i-- {
		if err := h.services[names[i]].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop: %w", names[i], err))
		}
	}
	return errors.Join(errs...)
}

// resolve orders services so every dependency precedes its dependents
// Depth-first over sorted names, so the order is deterministic; a cycle reports its path
func (h *Hub) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	order := make([]string, 0, len(h.services))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			cycle := append(path[slices.Index(path, name):], name)
			return fmt.Errorf("%w: %s", ErrCircularDependency, strings.Join(cycle, " -> "))
		}

		state[name] = visiting
		path = append(path, name)
		for _, dep := range h.services[name].Dependencies() {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("service %s %w: %s", name, ErrMissingDependency, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range h.sortedNames() {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
