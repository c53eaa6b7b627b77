// Package logger builds the application's slog.Logger.
//
// New applies functional options over production-safe defaults (JSON,
// info level, stdout) and wraps the handler in a decorator that pulls
// request-scoped attributes out of context on every log call. Extractors
// are contributed by the packages that own the context values: request ids
// from pkg/requestid, the deployment environment from pkg/environment, the
// current organization from pkg/org.
//
//	log := logger.New(
//	    logger.WithProduction("saleshub"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        org.LoggerExtractor(),
//	    ),
//	)
//
// The attr helpers keep field names consistent across the codebase; prefer
// logger.Error(err) over ad-hoc slog.Any("error", err).
package logger
