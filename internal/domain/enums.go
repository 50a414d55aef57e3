package domain

// Difficulty labels sample puzzles and saved games.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// Technique says how a hint was derived.
type Technique int

const (
	// TechniqueSingle marks a cell with exactly one legal candidate.
	TechniqueSingle Technique = iota
	// TechniqueSearch marks a value read back from a full solution.
	TechniqueSearch
)
