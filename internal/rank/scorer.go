package rank

// Scorer rates how well a posting's text matches the user's profile.
type Scorer interface {
	Score(title, description string) int
}
