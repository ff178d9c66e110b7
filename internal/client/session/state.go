package session

// State is the authoritative session state. Exactly one value holds at any
// instant and only the Controller emits transitions.
type State string

const (
	StateLoggedOut      State = "logged_out"
	StateAuthenticating State = "authenticating"
	StateLoggedIn       State = "logged_in"
)

// Nav is the navigation intent the presentation layer should act on after a
// transition.
type Nav string

const (
	NavNone  Nav = ""
	NavLogin Nav = "login"
	NavHome  Nav = "home"
)

// Status is a snapshot of the session. Token is non-empty only when State
// is StateLoggedIn.
type Status struct {
	State State
	Token string
}

// Event describes a state transition for the presentation layer: the new
// status, a user-facing message (possibly empty), and where to navigate.
type Event struct {
	Status  Status
	Message string
	Nav     Nav
}
