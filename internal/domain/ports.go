package domain

import "context"

// Fetcher retrieves the raw Swagger document.
type Fetcher interface {
	// Fetch returns the response body of a successful JSON response.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Formatter normalizes generated TypeScript source.
type Formatter interface {
	// Format returns the formatted source of the named file.
	Format(ctx context.Context, fileName, source string) (string, error)

	// Name returns the formatter name (e.g., "builtin", "prettier").
	Name() string
}

// Sink persists generated files.
type Sink interface {
	// Write stores a single generated file.
	Write(file GeneratedFile) error
}

// GeneratedFile is one output file, named without its extension.
type GeneratedFile struct {
	Name       string
	Content    string
	Operations int
}
