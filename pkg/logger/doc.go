// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions. The options
// select the output format and minimum level, attach static attributes, and
// register ContextExtractor callbacks that pull attributes from a context
// value every time a record is handled.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format and wraps it with LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks before delegating to the underlying handler.
//
// Helper constructors such as FormID, Field and Error live in attr.go and keep
// attribute naming consistent across the form engine and its tools.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "formcheck"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "field validated",
//	    logger.FormID("signup"),
//	    logger.Field("email"),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only when the supplied error value is
// non-nil, so callers can log without an extra nil check:
//
//	log.Warn("repository unavailable", logger.Error(err))
package logger
