package shellcmd

import "github.com/macropower/nixshellgen/pkg/flakeedit"

type (
	// Sent when initialization has completed.
	EventInit struct {
		Err error
	}

	// Sent with the number of inputs an add will process.
	EventSetInputTotal int

	// Sent when work on an input has started.
	EventAddingInput string

	// Sent when an input has been handled, whether or not it succeeded.
	EventAddedInput struct {
		Err error
		Key string
		// Remediation is the line to add by hand when Err is set.
		Remediation string
		Outcome     flakeedit.Outcome
	}

	// Sent when all work has completed.
	EventDone struct {
		Err error
	}
)
