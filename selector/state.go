// ABOUTME: Lifecycle states of the selector: Unloaded, Loading, Populated, and the terminal Error state.
package selector

// State is the selector's position in its page lifecycle.
type State int

const (
	StateUnloaded State = iota
	StateLoading
	StatePopulated
	StateError
)

// String returns a lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}
