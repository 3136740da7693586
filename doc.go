// Package konform is a declarative validation engine for Go values.
//
// The engine itself lives in pkg/validator; the remaining packages are the
// supporting stack it is built on:
//
//   - pkg/validator – builders, results, failure trees, report rendering and a rule library
//   - pkg/async     – futures and an order-preserving worker Map used for parallel element checks
//   - pkg/config    – typed configuration from environment variables and .env files
//   - pkg/logger    – slog factory and attribute helpers
//
// Basic Usage:
//
//	res := validator.Validate(emp, func(b *validator.Builder[Employee]) {
//		b.Require("should be 18 or older", func(e Employee) bool { return e.Age >= 18 })
//		b.Require("name must be at least 1 character", func(e Employee) bool { return e.Name != "" })
//	})
//	if !res.WasSuccessful() {
//		fmt.Println(res.Err())
//	}
//
// Configuration from the environment:
//
//	opts, err := validator.LoadOptions(config.WithEnvFiles(".env"))
//	if err != nil {
//		return err
//	}
//	res := validator.Validate(order, orderRules, opts...)
package konform
