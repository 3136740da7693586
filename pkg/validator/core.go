package validator

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule is a prepared check paired with the requirement it enforces.
// Builder.Apply records Requirement when Check returns false.
type Rule struct {
	Requirement string
	Check       func() bool
}

// NewRule pairs requirement text with a check for use with Builder.Apply.
func NewRule(requirement string, check func() bool) Rule {
	return Rule{Requirement: requirement, Check: check}
}
