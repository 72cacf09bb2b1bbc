package rolls

// ModifierSource is one attack tooltip line
type ModifierSource struct {
	Value    float64
	Name     string
	Modifier string
	Sort     int
}

// Change is a calculated stat change, used for damage tooltips and
// default actor changes.
type Change struct {
	ID      string
	Formula string
	Value   float64
	Target  string
	Type    string
	Name    string
	// Flavor labels the term in a rolled formula
	Flavor string
}

// Hint is an item hint shown on the inventory row
type Hint struct {
	Label string
	Hint  string
}

// EffectNote is appended to the chat card of an attack
type EffectNote struct {
	Text   string
	Source string
}
