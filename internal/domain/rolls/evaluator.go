package rolls

//go:generate mockgen -destination=mock/mock_evaluator.go -package=mockrolls -source=evaluator.go

// Evaluator computes formula values against roll data
type Evaluator interface {
	// Evaluate rolls the formula
	Evaluate(formula string, data RollData) (float64, error)
	// Max is the highest result the formula can produce
	Max(formula string, data RollData) (float64, error)
}
