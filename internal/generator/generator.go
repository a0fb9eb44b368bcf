package generator

import (
	"fmt"
	"strings"

	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
)

// DefaultRequestModule is the module providing BASE_URL and doRequestUrl.
const DefaultRequestModule = "src/app/api/commonRequest"

// Options configures file rendering.
type Options struct {
	RequestModule string
}

// Result is the outcome of a generation run.
type Result struct {
	Files       []domain.GeneratedFile
	Aggregation *Aggregation
	Registry    *Registry
}

// Generate builds the unformatted content of every output file. Each call uses
// its own Registry, so independent runs never share declarations.
func Generate(doc *domain.Document, opts Options) (*Result, error) {
	if opts.RequestModule == "" {
		opts.RequestModule = DefaultRequestModule
	}

	registry := NewRegistry()
	aggregation := Aggregate(doc, registry)

	header, err := RenderHeader(opts.RequestModule)
	if err != nil {
		return nil, fmt.Errorf("failed to render file header: %w", err)
	}

	result := &Result{
		Aggregation: aggregation,
		Registry:    registry,
	}

	for _, page := range aggregation.Pages {
		body, err := RenderPage(page)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", page.FileName, err)
		}

		result.Files = append(result.Files, domain.GeneratedFile{
			Name:       page.FileName,
			Content:    header + "\n" + body,
			Operations: len(page.Operations),
		})
	}

	return result, nil
}

// RenderPage serializes every operation of the page: request declarations,
// response declarations and the fetch function, separated by blank lines.
func RenderPage(page *Page) (string, error) {
	var blocks []string

	for _, op := range page.Operations {
		if len(op.RequestNodes) > 0 {
			blocks = append(blocks, RenderNodes(op.RequestNodes))
		}
		if len(op.ResponseNodes) > 0 {
			blocks = append(blocks, RenderNodes(op.ResponseNodes))
		}

		fn, err := RenderFetchFunction(FetchFunction{
			FunctionName: op.FunctionName,
			Summary:      op.Summary,
			URL:          op.URL,
			RequestType:  MapType(op.Request),
			ResponseType: MapType(op.Response),
		})
		if err != nil {
			return "", fmt.Errorf("operation %s: %w", op.URL, err)
		}

		blocks = append(blocks, fn)
	}

	return strings.Join(blocks, "\n"), nil
}
