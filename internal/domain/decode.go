package domain

import (
	"errors"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// decodeOptions make parsing as forgiving as JSON.parse: a repeated member
// name overwrites the earlier one and invalid UTF-8 becomes U+FFFD.
var decodeOptions = json.JoinOptions(
	jsontext.AllowDuplicateNames(true),
	jsontext.AllowInvalidUTF8(true),
)

var errNotObject = errors.New("swagger document is not a JSON object")

// member decodes one object member value into its field.
type member func(val jsontext.Value, opts json.Options)

// field decodes into dst, leaving dst untouched when the value does not fit.
func field[T any](dst *T) member {
	return func(val jsontext.Value, opts json.Options) {
		var v T
		if err := json.Unmarshal(val, &v, opts); err == nil {
			*dst = v
		}
	}
}

// decodeObject reads one value from dec. Members of an object are decoded
// into fields by name; unknown members and members of the wrong shape are
// skipped. Any other value is skipped and reported as false. Only syntax
// errors are returned.
func decodeObject(dec *jsontext.Decoder, fields map[string]member) (bool, error) {
	if dec.PeekKind() != '{' {
		return false, dec.SkipValue()
	}
	if _, err := dec.ReadToken(); err != nil {
		return true, err
	}

	opts := dec.Options()

	for dec.PeekKind() != '}' {
		name, err := dec.ReadToken()
		if err != nil {
			return true, err
		}

		val, err := dec.ReadValue()
		if err != nil {
			return true, err
		}

		if decode, ok := fields[name.String()]; ok {
			decode(val, opts)
		}
	}

	_, err := dec.ReadToken()

	return true, err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom. The top level must be an object.
func (d *Document) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	ok, err := decodeObject(dec, map[string]member{
		"swagger":     field(&d.Swagger),
		"info":        field(&d.Info),
		"tags":        field(&d.Tags),
		"paths":       field(&d.Paths),
		"definitions": field(&d.Definitions),
	})
	if err == nil && !ok {
		return errNotObject
	}

	return err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom.
func (i *Info) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	_, err := decodeObject(dec, map[string]member{
		"title":       field(&i.Title),
		"version":     field(&i.Version),
		"description": field(&i.Description),
	})

	return err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom.
func (t *Tag) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	_, err := decodeObject(dec, map[string]member{
		"name":        field(&t.Name),
		"description": field(&t.Description),
	})

	return err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom.
func (p *PathItem) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	_, err := decodeObject(dec, map[string]member{
		"post": field(&p.Post),
	})

	return err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom.
func (o *Operation) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	_, err := decodeObject(dec, map[string]member{
		"tags":        field(&o.Tags),
		"summary":     field(&o.Summary),
		"description": field(&o.Description),
		"operationId": field(&o.OperationID),
		"parameters":  field(&o.Parameters),
		"responses":   field(&o.Responses),
	})

	return err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom.
func (p *Parameter) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	_, err := decodeObject(dec, map[string]member{
		"name":     field(&p.Name),
		"in":       field(&p.In),
		"required": field(&p.Required),
		"schema":   field(&p.Schema),
	})

	return err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom.
func (r *Response) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	_, err := decodeObject(dec, map[string]member{
		"description": field(&r.Description),
		"schema":      field(&r.Schema),
	})

	return err
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom. A properties member that
// is not an object is dropped, so the schema renders as an alias.
func (s *Schema) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	_, err := decodeObject(dec, map[string]member{
		"type":        field(&s.Type),
		"format":      field(&s.Format),
		"title":       field(&s.Title),
		"description": field(&s.Description),
		"originalRef": field(&s.OriginalRef),
		"$ref":        field(&s.Ref),
		"items":       field(&s.Items),
		"properties":  field(&s.Properties),
		"required":    field(&s.Required),
	})

	return err
}
