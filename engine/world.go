package engine

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/lixenwraith/vi-skate/input"
	"github.com/lixenwraith/vi-skate/locomotion"
	"github.com/lixenwraith/vi-skate/physics"
	"github.com/lixenwraith/vi-skate/status"
	"github.com/lixenwraith/vi-skate/trick"
)

// ErrDuplicateBoard is returned when spawning a second board with the same name
var ErrDuplicateBoard = errors.New("duplicate board name")

// BoardEvent is a trick event tagged with the emitting board and step
type BoardEvent struct {
	Board string
	Step  int64
	Event trick.Event
}

// EventHandler receives board events synchronously during Step
type EventHandler func(BoardEvent)

// World owns every board and advances them in fixed steps
// Step is single-threaded; Send on a board is safe from other goroutines
type World struct {
	ecs      donburi.World
	boards   *donburi.Query
	entities map[string]donburi.Entity
	order    []string // spawn order, step order

	settings Settings
	loco     locomotion.Params
	tricks   trick.Params
	ground   physics.Plane

	registry *status.Registry
	log      zerolog.Logger
	handlers []EventHandler

	step int64
}

// NewWorld creates an empty world
// A nil registry gets a private one; use zerolog.Nop() to silence logging
func NewWorld(s Settings, loco locomotion.Params, tricks trick.Params, reg *status.Registry, log zerolog.Logger) *World {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &World{
		ecs:      donburi.NewWorld(),
		boards:   donburi.NewQuery(filter.Contains(Board)),
		entities: make(map[string]donburi.Entity),
		settings: s,
		loco:     loco,
		tricks:   tricks,
		ground:   s.Ground(),
		registry: reg,
		log:      log.With().Str("component", "world").Logger(),
	}
}

// Subscribe registers a handler for trick events of every board
// Must be called before the first Step
func (w *World) Subscribe(h EventHandler) {
	w.handlers = append(w.handlers, h)
}

// Settings returns the world settings
func (w *World) Settings() Settings { return w.settings }

// Registry returns the metric registry
func (w *World) Registry() *status.Registry { return w.registry }

// Ground returns the ground plane
func (w *World) Ground() physics.Plane { return w.ground }

// StepCount returns the number of completed steps
func (w *World) StepCount() int64 { return w.step }

// SpawnBoard creates a board at pos resting on the ground, facing +Z
func (w *World) SpawnBoard(name string, pos mgl64.Vec3) (BoardData, error) {
	if _, ok := w.entities[name]; ok {
		return BoardData{}, fmt.Errorf("%w: %q", ErrDuplicateBoard, name)
	}

	rest := w.ground.Height + w.ground.ClearHeight
	if pos[1] < rest {
		pos[1] = rest
	}

	body := physics.NewRigidBody(pos, w.settings.Inertia(), w.settings.Gravity)
	body.SetMaxAngularSpeed(w.settings.MaxAngularSpeed)

	deck := &Deck{}
	loco := locomotion.NewController(body, w.loco)
	loco.SetGroundProbe(w.ground)
	loco.SetDeck(deck)

	machine := trick.NewMachine(body, w.tricks)
	machine.SetGroundProbe(w.ground)
	machine.SetCatchReference(body)

	queue := w.settings.CommandQueueSize
	if queue <= 0 {
		queue = 1
	}

	data := BoardData{
		Name:     name,
		Spawn:    pos,
		Body:     body,
		Loco:     loco,
		Trick:    machine,
		Deck:     deck,
		Metrics:  status.NewBoardMetrics(w.registry, name),
		Commands: make(chan input.Command, queue),
	}
	data.Metrics.Phase.Store(trick.PhaseIdle.String())
	machine.SetListener(w.listener(data))

	entity := w.ecs.Create(Board)
	Board.SetValue(w.ecs.Entry(entity), data)
	w.entities[name] = entity
	w.order = append(w.order, name)

	w.log.Debug().Str("board", name).Floats64("pos", pos[:]).Msg("board spawned")
	return data, nil
}

// RemoveBoard deletes a board; queued commands are discarded
func (w *World) RemoveBoard(name string) bool {
	entity, ok := w.entities[name]
	if !ok {
		return false
	}
	w.ecs.Remove(entity)
	delete(w.entities, name)
	for i, n := range w.order {
		if n == name {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Board returns the named board
func (w *World) Board(name string) (BoardData, bool) {
	entity, ok := w.entities[name]
	if !ok {
		return BoardData{}, false
	}
	return *Board.Get(w.ecs.Entry(entity)), true
}

// Boards returns all boards in spawn order
func (w *World) Boards() []BoardData {
	out := make([]BoardData, 0, len(w.order))
	for _, name := range w.order {
		if b, ok := w.Board(name); ok {
			out = append(out, b)
		}
	}
	return out
}

// BoardCount returns the number of live board entities
func (w *World) BoardCount() int {
	return w.boards.Count(w.ecs)
}

// Send queues a command on the named board
func (w *World) Send(name string, cmd input.Command) bool {
	b, ok := w.Board(name)
	if !ok {
		return false
	}
	if !b.Send(cmd) {
		w.log.Warn().Str("board", name).Stringer("command", cmd).Msg("command queue full, dropped")
		return false
	}
	return true
}

// Step advances every board by one fixed timestep
// Per board: drain commands, locomotion, trick tick, integrate, ground resolve
func (w *World) Step() {
	dt := w.settings.StepSeconds()
	w.step++

	for _, name := range w.order {
		entity := w.entities[name]
		b := Board.Get(w.ecs.Entry(entity))
		w.stepBoard(*b, dt)
	}
}

// StepN runs n steps
func (w *World) StepN(n int) {
	for i := 0; i < n; i++ {
		w.Step()
	}
}

func (w *World) stepBoard(b BoardData, dt float64) {
	w.drain(b)

	b.Loco.Step(dt)
	b.Trick.Tick(dt)

	b.Body.Integrate(dt)
	grounded := w.ground.Resolve(b.Body)

	st := b.Trick.State()
	m := b.Metrics
	m.Steps.Add(1)
	m.Grounded.Store(grounded)
	m.Speed.Store(b.Body.LinearVelocity().Len())
	m.AirTime.Store(st.AirTime)
	if limit := b.Trick.Params().MaxChargeTime; limit > 0 {
		m.Charge.Store(st.ChargeTime / limit)
	}
	m.Phase.Store(st.Phase.String())
}

// drain applies queued commands in arrival order
func (w *World) drain(b BoardData) {
	for {
		select {
		case cmd := <-b.Commands:
			w.apply(b, cmd)
		default:
			return
		}
	}
}

func (w *World) apply(b BoardData, cmd input.Command) {
	switch cmd.Kind {
	case input.CommandPush:
		b.Loco.Push()
	case input.CommandSteer:
		b.Loco.SetSteering(cmd.Steer)
	case input.CommandTrick:
		b.Trick.HandleInput(cmd.Trick)
	case input.CommandReset:
		w.resetBoard(b)
	}
}

// resetBoard respawns the board at its spawn point and forces the trick machine idle
func (w *World) resetBoard(b BoardData) {
	b.Body.SetPosition(b.Spawn)
	b.Body.SetOrientation(mgl64.QuatIdent())
	b.Body.SetLinearVelocity(mgl64.Vec3{})
	b.Body.SetAngularVelocity(mgl64.Vec3{})
	b.Loco.SetSteering(0)
	b.Trick.Reset()
}

// listener builds the trick event callback of one board: metrics, logging, fan-out
func (w *World) listener(b BoardData) trick.Listener {
	name := b.Name
	m := b.Metrics
	return func(e trick.Event) {
		switch e.Type {
		case trick.EventPop:
			m.Pops.Add(1)
		case trick.EventCatch:
			m.Catches.Add(1)
			m.LastTrick.Store(e.Result.Name())
			m.BestAir.StoreMax(b.Trick.State().AirTime)
		case trick.EventBail:
			m.Bails.Add(1)
			m.LastTrick.Store("bail")
		case trick.EventGroundReset:
			m.GroundResets.Add(1)
		}

		ev := w.log.Debug().
			Str("board", name).
			Int64("step", w.step).
			Stringer("event", e.Type).
			Bool("nollie", e.Nollie)
		switch e.Type {
		case trick.EventPop:
			ev = ev.Float64("pop_force", e.PopForce)
		case trick.EventCatch, trick.EventBail, trick.EventGroundReset:
			ev = ev.Str("trick", e.Result.Name()).
				Int("shuvit", e.Result.ShuvitCount).
				Int("kickflip", e.Result.KickflipCount)
		}
		ev.Msg("trick event")

		be := BoardEvent{Board: name, Step: w.step, Event: e}
		for _, h := range w.handlers {
			h(be)
		}
	}
}
