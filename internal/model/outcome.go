package model

// Team is a winning side
type Team string

const (
	TeamCrewmates Team = "crewmates"
	TeamImpostors Team = "impostors"
)

// Outcome records which side won and why
type Outcome struct {
	Winner Team
	Reason string
}

// Equal compares two optional outcomes by winner and reason
func (o *Outcome) Equal(other *Outcome) bool {
	if o == nil || other == nil {
		return o == nil && other == nil
	}
	return o.Winner == other.Winner && o.Reason == other.Reason
}
