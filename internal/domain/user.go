package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle           UserState = "idle"
	StateWaitingForeign UserState = "waiting_foreign"
	StateWaitingNative  UserState = "waiting_native"
	StateWaitingEdit    UserState = "waiting_edit"
)

// StateData holds temporary data for user's current state
type StateData struct {
	State       UserState
	CurrentWord string // foreign word typed before the native one
	EditID      string // entry being edited
}
