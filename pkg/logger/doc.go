// Package logger builds log/slog loggers from functional options and
// provides the attribute helpers used across konform.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the
// configured Format and wraps it with LogHandlerDecorator, which runs any
// registered ContextExtractor before delegating.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.EnvProduction, "orders"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//	res := validator.Validate(order, rules, validator.WithLogger(log))
//
// Helpers such as Component, Source, FailureCount and Requirements keep
// attribute keys consistent. Error returns an empty Attr for a nil error,
// so it can be passed unconditionally.
package logger
