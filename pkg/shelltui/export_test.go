package shelltui

// GetErrorMessage is an exported alias of [getErrorMessage] for testing.
var GetErrorMessage = getErrorMessage

// TeaMsgWriteLog is an alias for [teaMsgWriteLog] exported for testing.
type TeaMsgWriteLog = teaMsgWriteLog

// NewTestAddModel creates an [AddModel] in a specific state for testing.
func NewTestAddModel(width int, state modelState, err error, total, added, present, failed int) *AddModel {
	b := newBaseModel()
	b.width = width
	b.state = state
	b.err = err

	return &AddModel{
		baseModel: b,
		total:     total,
		added:     added,
		present:   present,
		failed:    failed,
	}
}

// Exported state constants for testing.
const (
	StateIdle    = stateIdle
	StateWorking = stateWorking
	StateDone    = stateDone
	StateError   = stateError
)
