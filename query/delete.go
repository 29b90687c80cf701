package query

// Delete emits the literal `delete` and is terminal (spec §4.5).
type Delete struct{}

// NewDelete builds a Delete stage.
func NewDelete() *Delete { return &Delete{} }

func (s *Delete) Name() string { return "delete" }

func (s *Delete) Wire() string { return "delete" }
