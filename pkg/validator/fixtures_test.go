package validator_test

import "github.com/dmitrymomot/konform/pkg/validator"

type Employee struct {
	Name string
	Age  int
}

func (e Employee) String() string { return e.Name }

type Company struct {
	Name      string
	Employees []Employee
}

func (c Company) String() string { return c.Name }

const (
	adultRequirement = "should be 18 or older"
	nameRequirement  = "name must be at least 1 character"
)

func employeeChecks(b *validator.Builder[Employee]) {
	b.Require(adultRequirement, func(e Employee) bool { return e.Age >= 18 })
	b.Require(nameRequirement, func(e Employee) bool { return e.Name != "" })
}
