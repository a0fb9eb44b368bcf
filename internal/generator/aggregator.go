package generator

import (
	"strings"

	"github.com/GabrielNunesIT/swagger-ts-gen/internal/domain"
)

const (
	// successStatus is the only response code whose schema is generated.
	successStatus = "200"

	unsafeFileChars = `/\:*?"<>|`

	// fallbackPageName names a page whose tag yields no usable file name.
	fallbackPageName = "Api"
)

// Operation is a POST endpoint assigned to a page.
type Operation struct {
	URL           string
	FunctionName  string
	Summary       string
	Request       domain.PropertyType
	Response      domain.PropertyType
	RequestNodes  []Node
	ResponseNodes []Node
}

// Page collects the operations written to one output file.
type Page struct {
	FileName   string
	Tags       []string
	Operations []Operation
}

// Aggregation is the result of grouping a document into pages.
type Aggregation struct {
	// Pages holds every page with at least one operation, in tag order.
	Pages []*Page
	// Untagged lists POST paths skipped because they have no tag.
	Untagged []string
	// UndeclaredTags lists tags used by operations but missing from the tag list.
	UndeclaredTags []string
}

// PageFileName derives the output file name of a tag: its description with
// all whitespace removed, or the tag name when the description is empty.
// Path separators and characters unusable in file names are dropped too, so
// the name always stays inside the output directory.
func PageFileName(tag domain.Tag) string {
	if name := fileName(tag.Description); name != "" {
		return name
	}

	if name := fileName(tag.Name); name != "" {
		return name
	}

	return fallbackPageName
}

func fileName(s string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(unsafeFileChars, r) {
			return -1
		}
		return r
	}, StripSpace(s))

	if strings.Trim(name, ".") == "" {
		return ""
	}

	return name
}

type aggregator struct {
	pages   map[string]*Page
	order   []*Page
	tagFile map[string]string
	result  *Aggregation
}

// Aggregate walks the document paths in order and groups every tagged POST
// operation into the page of its first tag. Tags whose file names collide
// share a page. Declarations are emitted through registry as operations are
// visited, so the first page to reference a definition owns it.
func Aggregate(doc *domain.Document, registry *Registry) *Aggregation {
	a := &aggregator{
		pages:   make(map[string]*Page),
		tagFile: make(map[string]string),
		result:  &Aggregation{},
	}

	for _, tag := range doc.Tags {
		a.addTag(tag.Name, PageFileName(tag))
	}

	emitter := NewEmitter(doc.Definitions, registry)

	for _, path := range doc.Paths.Keys() {
		item, _ := doc.Paths.Get(path)
		if item == nil || item.Post == nil {
			continue
		}

		op := item.Post
		if len(op.Tags) == 0 || op.Tags[0] == "" {
			a.result.Untagged = append(a.result.Untagged, path)
			continue
		}

		tagName := op.Tags[0]
		file, ok := a.tagFile[tagName]
		if !ok {
			file = PageFileName(domain.Tag{Name: tagName})
			a.addTag(tagName, file)
			a.result.UndeclaredTags = append(a.result.UndeclaredTags, tagName)
		}

		operation := Operation{
			URL:          path,
			FunctionName: op.OperationID,
			Summary:      op.Summary,
		}
		if operation.FunctionName == "" {
			operation.FunctionName = functionNameFromPath(path)
		}

		if len(op.Parameters) > 0 && op.Parameters[0].Schema != nil {
			operation.Request = op.Parameters[0].Schema.PropertyType()
			operation.RequestNodes = emitter.Emit(domain.NestedRef(operation.Request), file)
		}

		if resp := op.Responses[successStatus]; resp != nil && resp.Schema != nil {
			operation.Response = resp.Schema.PropertyType()
			operation.ResponseNodes = emitter.Emit(domain.NestedRef(operation.Response), file)
		}

		page := a.pages[file]
		page.Operations = append(page.Operations, operation)
	}

	for _, page := range a.order {
		if len(page.Operations) > 0 {
			a.result.Pages = append(a.result.Pages, page)
		}
	}

	return a.result
}

func (a *aggregator) addTag(tagName, file string) {
	a.tagFile[tagName] = file

	page, ok := a.pages[file]
	if !ok {
		page = &Page{FileName: file}
		a.pages[file] = page
		a.order = append(a.order, page)
	}

	page.Tags = append(page.Tags, tagName)
}
