package problemgen

// Difficulty bounds for all question generation.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// InitialSetPerCell is how many questions the initial pool holds per
// (math type, difficulty) combination.
const InitialSetPerCell = 5

// addSubMax maps difficulty to the operand ceiling for addition and
// subtraction questions.
var addSubMax = map[int]int{
	1: 10,
	2: 20,
	3: 50,
	4: 100,
	5: 1000,
}

// mulDivMax maps difficulty to the operand ceiling for multiplication and
// division questions.
var mulDivMax = map[int]int{
	1: 5,
	2: 10,
	3: 12,
	4: 15,
	5: 20,
}

// fractionDenominators is the fixed denominator set for fraction questions.
// Every member divides 100, so the two-decimal answer is always exact.
var fractionDenominators = []int{2, 4, 5, 10}
