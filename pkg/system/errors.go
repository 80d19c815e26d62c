package system

import "fmt"

// SystemBadRole indicates a Role tag byte outside {1, 2, 3}.
type SystemBadRole struct {
	Value uint8
}

func (e *SystemBadRole) Error() string {
	return fmt.Sprintf("system: bad role discriminant 0x%02X", e.Value)
}

// SystemBadPosition indicates a Position tag byte outside {1..6}.
type SystemBadPosition struct {
	Value uint8
}

func (e *SystemBadPosition) Error() string {
	return fmt.Sprintf("system: bad position discriminant 0x%02X", e.Value)
}
