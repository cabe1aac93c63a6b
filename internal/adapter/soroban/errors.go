package soroban

import "fmt"

// SimulationError is returned by SimulateCall. Transient failures come from
// the transport or the RPC server and may succeed on retry; non-transient
// ones are reported by the contract or the host.
type SimulationError struct {
	Transient bool
	Err       error
}

func (e *SimulationError) Error() string {
	if e.Transient {
		return fmt.Sprintf("soroban: simulation unavailable: %v", e.Err)
	}
	return fmt.Sprintf("soroban: simulation failed: %v", e.Err)
}

func (e *SimulationError) Unwrap() error { return e.Err }
