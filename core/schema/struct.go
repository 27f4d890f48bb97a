package schema

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so issue paths match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

type structConfig struct {
	coerce bool
}

// StructOption configures a struct schema.
type StructOption func(*structConfig)

// WithCoercion converts string input into the field's type (numbers, booleans,
// slices of those). Use it for query strings.
//
// Coercion is mapstructure's weak typing, which is looser than string parsing:
// an empty string becomes 0 or false, so "?n=" decodes as n=0, and a
// one-element slice decodes into a scalar field.
func WithCoercion() StructOption {
	return func(c *structConfig) {
		c.coerce = true
	}
}

// StructSchema decodes values into T using `json` tags and validates them with
// `validate` tags.
type StructSchema[T any] struct {
	cfg structConfig
}

// Struct returns a schema producing values of type T.
func Struct[T any](opts ...StructOption) *StructSchema[T] {
	s := &StructSchema[T]{}
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return s
}

// Parse decodes v into T and validates the result. The returned value has
// dynamic type T.
func (s *StructSchema[T]) Parse(v any) (any, error) {
	out, err := s.decode(v)
	if err != nil {
		return nil, err
	}
	if err := validateValue(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Describe derives a definition from T's fields.
func (s *StructSchema[T]) Describe() *Definition {
	return definitionOf(reflect.TypeFor[T](), map[reflect.Type]bool{})
}

func (s *StructSchema[T]) decode(v any) (T, error) {
	var out T

	switch typed := v.(type) {
	case T:
		return typed, nil
	case *T:
		if typed != nil {
			return *typed, nil
		}
		v = nil
	}

	target := reflect.TypeFor[T]()
	if err := checkShape(target, v); err != nil {
		return out, err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			integralHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
		TagName:          "json",
		WeaklyTypedInput: s.cfg.coerce,
		Result:           &out,
	})
	if err != nil {
		return out, fmt.Errorf("schema: build decoder: %w", err)
	}

	if err := dec.Decode(v); err != nil {
		return out, decodeIssues(err)
	}
	return out, nil
}

// checkShape rejects inputs whose kind can never decode into target, so that
// callers get a single root issue instead of a decoder message.
func checkShape(target reflect.Type, v any) error {
	for target.Kind() == reflect.Pointer {
		target = target.Elem()
	}
	if v == nil {
		switch target.Kind() {
		case reflect.Struct, reflect.Map:
			return NewError(nil, "expected object, received null")
		case reflect.Slice, reflect.Array:
			return NewError(nil, "expected array, received null")
		}
		return nil
	}

	got := reflect.Indirect(reflect.ValueOf(v)).Kind()
	switch target.Kind() {
	case reflect.Struct, reflect.Map:
		if got != reflect.Map && got != reflect.Struct {
			return NewError(nil, "expected object, received "+kindName(got))
		}
	case reflect.Slice, reflect.Array:
		if got != reflect.Slice && got != reflect.Array {
			return NewError(nil, "expected array, received "+kindName(got))
		}
	}
	return nil
}

// integralHook rejects fractional numbers bound for integer fields, which
// mapstructure would otherwise truncate.
func integralHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}

	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, errExpectedInteger
	}
	if f < 0 && to.Kind() >= reflect.Uint && to.Kind() <= reflect.Uint64 {
		return nil, errExpectedUnsigned
	}
	return data, nil
}

var (
	errExpectedInteger  = errors.New("expected integer")
	errExpectedUnsigned = errors.New("expected non-negative integer")
)

func decodeIssues(err error) error {
	var merr *mapstructure.Error
	if !errors.As(err, &merr) {
		field, msg := splitDecodeMessage(err.Error())
		return NewError(splitPath(field), msg)
	}

	issues := NewIssues()
	for _, msg := range merr.Errors {
		field, text := splitDecodeMessage(msg)
		issues.Add(splitPath(field), text)
	}
	return &Error{Issues: issues}
}

// splitDecodeMessage pulls the quoted field name out of a mapstructure message
// and replaces the rest with a stable description. Messages come in shapes
// such as:
//
//	'age' expected type 'int', got unconvertible type 'string', value: 'x'
//	cannot parse 'age' as int: strconv.ParseInt: parsing "x": invalid syntax
//	error decoding 'age': expected integer
func splitDecodeMessage(msg string) (string, string) {
	field, rest, ok := quoted(msg)
	if !ok {
		return "", "invalid value"
	}

	switch {
	case strings.HasPrefix(msg, "error decoding '"):
		if _, text, found := strings.Cut(rest, ": "); found {
			return field, decodeHookMessage(text)
		}
	case strings.HasPrefix(msg, "cannot parse '"):
		switch {
		case strings.Contains(rest, " as int"), strings.Contains(rest, " as uint"):
			return field, "expected integer"
		case strings.Contains(rest, " as float"):
			return field, "expected number"
		case strings.Contains(rest, " as bool"):
			return field, "expected boolean"
		}
	}

	if i := strings.Index(rest, "expected type '"); i >= 0 {
		typ, _, _ := quoted(rest[i:])
		return field, "expected " + goTypeName(typ)
	}
	switch {
	case strings.Contains(rest, "expected a map"):
		return field, "expected object"
	case strings.Contains(rest, "array or slice"):
		return field, "expected array"
	}
	return field, "invalid value"
}

// decodeHookMessage keeps messages produced by this package's hooks and hides
// the rest, such as time.Parse details.
func decodeHookMessage(text string) string {
	switch text {
	case errExpectedInteger.Error(), errExpectedUnsigned.Error():
		return text
	}
	if strings.HasPrefix(text, "parsing time") {
		return "expected RFC 3339 date-time"
	}
	return "invalid value"
}

// quoted returns the first single-quoted substring of s and what follows it.
func quoted(s string) (string, string, bool) {
	start := strings.IndexByte(s, '\'')
	if start < 0 {
		return "", s, false
	}
	end := strings.IndexByte(s[start+1:], '\'')
	if end < 0 {
		return "", s, false
	}
	end += start + 1
	return s[start+1 : end], s[end+1:], true
}

func goTypeName(typ string) string {
	switch {
	case strings.HasPrefix(typ, "[]"):
		return "array"
	case strings.HasPrefix(typ, "map["), strings.HasPrefix(typ, "struct"):
		return "object"
	case strings.HasPrefix(typ, "int"), strings.HasPrefix(typ, "uint"):
		return "integer"
	case strings.HasPrefix(typ, "float"):
		return "number"
	case typ == "bool":
		return "boolean"
	case typ == "string":
		return "string"
	}
	return typ
}

func validateValue(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := validate.Struct(rv.Interface())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewError(nil, err.Error())
	}

	issues := NewIssues()
	for _, fe := range verrs {
		// Namespace starts with the struct type name; drop it.
		_, ns, _ := strings.Cut(fe.Namespace(), ".")
		issues.Add(splitPath(ns), issueMessage(fe))
	}
	return &Error{Issues: issues}
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	}
	if fe.Param() != "" {
		return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return "failed " + fe.Tag()
}

func kindName(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	}
	return k.String()
}
