package config

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStatePlaying  MatchStateID = iota // Both fighters standing
	MatchStateFinished                     // A fighter was knocked out
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStatePlaying:
		return "playing"
	case MatchStateFinished:
		return "finished"
	}
	return "unknown"
}
