package lookup

// ConfigError reports invalid or contradictory construction arguments. It
// is always returned at construction time, never deferred to evaluation.
type ConfigError struct {
	Msg string
}

func (err *ConfigError) Error() string { return err.Msg }

// DomainError reports a query coordinate outside the table's domain under
// Raise edge handling, beyond the boundary guard band.
type DomainError struct {
	Msg string
}

func (err *DomainError) Error() string { return err.Msg }

// ShapeError reports input slices whose lengths are incompatible with the
// broadcast evaluation contract.
type ShapeError struct {
	Msg string
}

func (err *ShapeError) Error() string { return err.Msg }
