package query

import "fmt"

// TransitionError reports an append that would violate the pipeline
// transition rules of spec §4.3 (error kind PipelineTransition).
type TransitionError struct {
	Stage    string
	Previous string // empty when the pipeline was empty
}

func (e *TransitionError) Error() string {
	if e.Previous == "" {
		return fmt.Sprintf("query: cannot start pipeline with %s", e.Stage)
	}
	return fmt.Sprintf("query: %s cannot follow %s", e.Stage, e.Previous)
}

// InvalidArgumentError reports a stage constructor receiving a value of
// the wrong tag (error kind InvalidArgument), e.g. Get with a non-Link or
// Update with a non-field-update payload.
type InvalidArgumentError struct {
	Stage  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("query: invalid argument to %s: %s", e.Stage, e.Reason)
}
