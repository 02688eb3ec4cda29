package qualifier

type State int

const (
	Idle State = iota
	Registering
	Launching
	WaitingRunning
	Probing
	Qualified
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Registering:
		return "Registering"
	case Launching:
		return "Launching"
	case WaitingRunning:
		return "WaitingRunning"
	case Probing:
		return "Probing"
	case Qualified:
		return "Qualified"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
