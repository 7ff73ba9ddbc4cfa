package ir

import "github.com/cockroachdb/errors"

// Sentinel errors for the generation pipeline. Wrap them with context and
// test with errors.Is.
var (
	// ErrSourceRead means the input could not be read.
	ErrSourceRead = errors.New("source read error")

	// ErrSourceSyntax means the front-end could not parse the input.
	ErrSourceSyntax = errors.New("source syntax error")

	// ErrUnsupportedShape means a declaration cannot be represented, such as
	// an enum variant with named fields or more than one payload.
	ErrUnsupportedShape = errors.New("unsupported declaration shape")

	// ErrUnsupportedLiteral marks a discriminant outside the supported
	// literal kinds. It is reported, never returned from a run.
	ErrUnsupportedLiteral = errors.New("unsupported literal kind")

	// ErrUnknownBackend means no backend is registered under the name.
	ErrUnknownBackend = errors.New("unknown backend")
)
