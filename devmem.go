package devmem

// Space identifies the address space a piece of storage lives in.
type Space uint8

const (
	SpaceHost Space = iota
	SpaceDevice
)

func (s Space) String() string {
	switch s {
	case SpaceHost:
		return "host"
	case SpaceDevice:
		return "device"
	default:
		return "unknown"
	}
}

// Target returns the execution context this binary was built for.
func Target() Space {
	if OnDevice {
		return SpaceDevice
	}
	return SpaceHost
}
