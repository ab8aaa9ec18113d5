// Package errors provides structured error types with error codes,
// suggestions, and documentation links.
//
// Errors are created from a registry of known codes:
//
//	err := errors.New("E020").
//	    WithSuggestion("Register the module source before navigating").
//	    Wrap(cause)
//
// Each error carries a category (navigation, module, data, config, cli),
// a short message, an optional detail paragraph, and a documentation URL.
// The CLI prints them with errors.PrintError, which renders a readable
// multi-line report; FormatCompact gives the single-line form for logs.
//
// Errors support the standard errors.Is/As/Unwrap chain through their
// wrapped cause.
package errors
