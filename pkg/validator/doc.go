// Package validator is a declarative validation engine. A caller binds a
// value to a Builder, declares named boolean checks over it and over
// collections nested inside it, and receives a Result: either the validated
// value or the original value plus a tree of failure reasons shaped like the
// data.
//
// # Architecture
//
//   - Reason        – Simple (one failed requirement) or Group (failing members of a collection)
//   - Reasons       – insertion-ordered, deduplicating set of reasons
//   - Builder       – accumulates failures for one value without short-circuiting
//   - Result        – Success or Failure with Unwrap, MustUnwrap, OrNil and WasSuccessful
//   - Render        – turns a reason tree into indented report lines
//   - Rule          – requirement text plus a prepared check, see the *_rules.go files
//
// Each element of a nested collection is validated by its own Builder;
// only its failure, if any, reaches the parent, folded into a single Group
// named after the collection.
//
// # Usage
//
//	res := validator.Validate(company, func(b *validator.Builder[Company]) {
//	    b.Require("name must not be blank", func(c Company) bool { return c.Name != "" })
//	    validator.Each(b, "employees",
//	        func(c Company) []Employee { return c.Employees },
//	        func(e *validator.Builder[Employee]) {
//	            emp := e.Value()
//	            e.Check("should be 18 or older", emp.Age >= 18)
//	            e.Apply(validator.MinChars("name", emp.Name, 1))
//	        },
//	        validator.MinSize(1),
//	    )
//	})
//	company, err := res.Unwrap()
//
// A failing pass renders as:
//
//	Acme failed 1 validation checks:
//	- 1 members of collection 'employees' failed validation:
//	  - [0] Bob
//	    - should be 18 or older
//
// # Error Handling
//
// Failures are data until the caller asks for an error: Unwrap returns a
// *ValidationError, which matches ErrValidationFailed under errors.Is and
// renders its message lazily. Programmer mistakes such as empty requirement
// text or finalizing a builder twice panic.
//
// # Concurrency
//
// Builders are single-use and not safe for concurrent use. WithParallelism
// evaluates collection elements on several goroutines; results are gathered
// by position, so the report is the same as in a sequential pass.
//
// ValidateContext binds a pass to a context. Once it is done, remaining
// collection members are skipped and the context error is returned.
package validator
