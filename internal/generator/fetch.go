package generator

import (
	_ "embed"
	"strings"
	"text/template"
	"unicode"
)

var (
	//go:embed templates/header.ts.tpl
	headerTpl string
	//go:embed templates/fetch.ts.tpl
	fetchTpl string

	templateFuncs = template.FuncMap{
		"doc":   func(s string) string { return jsDoc(s, "") },
		"quote": func(s string) string { return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) },
	}

	headerTemplate = template.Must(template.New("header.ts.tpl").Parse(headerTpl))
	fetchTemplate  = template.Must(template.New("fetch.ts.tpl").Funcs(templateFuncs).Parse(fetchTpl))
)

// FetchFunction holds what the request wrapper of one operation needs.
type FetchFunction struct {
	FunctionName string
	Summary      string
	URL          string
	RequestType  string
	ResponseType string
}

// RenderFetchFunction emits the exported wrapper delegating to doRequestUrl.
// Missing request or response types default to any.
func RenderFetchFunction(fn FetchFunction) (string, error) {
	fn.RequestType = orAny(fn.RequestType)
	fn.ResponseType = orAny(fn.ResponseType)

	var sb strings.Builder
	if err := fetchTemplate.Execute(&sb, fn); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// RenderHeader emits the banner and the request primitive import.
func RenderHeader(requestModule string) (string, error) {
	var sb strings.Builder
	if err := headerTemplate.Execute(&sb, map[string]any{
		"RequestModule": requestModule,
	}); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// functionNameFromPath derives a camelCase name for operations without an
// operationId, e.g. "/order/list-all" becomes "orderListAll".
func functionNameFromPath(path string) string {
	words := strings.FieldsFunc(path, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	var sb strings.Builder
	for i, word := range words {
		runes := []rune(word)
		if i == 0 {
			runes[0] = unicode.ToLower(runes[0])
		} else {
			runes[0] = unicode.ToUpper(runes[0])
		}
		sb.WriteString(string(runes))
	}

	name := sb.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "request" + name
	}

	return name
}
