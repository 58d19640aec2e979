package trick

// HandleInput routes one abstract input symbol to the transition valid in the current phase
// Press and Hold mark a direction held, Release clears it; held directions drive the
// continuous controls in Tick. Returns true when a transition fired
func (m *Machine) HandleInput(in Input) bool {
	if in.Dir >= directionCount {
		return false
	}

	switch in.Action {
	case ActionPress, ActionHold:
		m.held[in.Dir] = true
	case ActionRelease:
		m.held[in.Dir] = false
	}

	// Hold only refreshes the held flag
	if in.Action == ActionHold {
		return false
	}

	switch m.state.Phase {
	case PhaseIdle:
		return m.routeIdle(in)
	case PhaseCharging:
		return m.routeCharging(in)
	case PhaseInAir:
		return m.routeInAir(in)
	}
	return false
}

func (m *Machine) routeIdle(in Input) bool {
	if in.Action != ActionPress {
		return false
	}
	switch in.Dir {
	case DirUp:
		return m.StartCharge(true)
	case DirDown:
		return m.StartCharge(false)
	}
	return false
}

func (m *Machine) routeCharging(in Input) bool {
	switch in.Action {
	case ActionPress:
		if in.Dir == DirLeft || in.Dir == DirRight {
			return m.AddYawCharge(in.Dir.sign())
		}
	case ActionRelease:
		if in.Dir == m.chargeDirection() {
			return m.Pop()
		}
	}
	return false
}

func (m *Machine) routeInAir(in Input) bool {
	if in.Dir != DirUp && in.Dir != DirDown {
		return false
	}
	switch in.Action {
	case ActionPress:
		return m.Level()
	case ActionRelease:
		return m.Catch()
	}
	return false
}

// chargeDirection is the button that started the current charge
func (m *Machine) chargeDirection() Direction {
	if m.state.IsNollie {
		return DirUp
	}
	return DirDown
}
