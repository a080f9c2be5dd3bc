// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

/*
Package translatable implements locale-keyed attribute storage for a single
database column.

A [Field] holds the mapping from locale code to translated text for exactly
one logical attribute (e.g. a page title). It serializes to and from one flat
JSON object so that the whole set of translations travels in a single JSONB
column:

	{"en":"Hello","da":"Hej"}

Design rules:

  - Locale codes are opaque, case-sensitive keys. The package performs no
    normalization and no fallback across related codes ("en" and "en-US" are
    unrelated keys). Callers that need fallback implement it explicitly, or
    use [Field.Resolve] which reports which locale satisfied the lookup.
  - The "current locale" is never ambient state. Every operation takes the
    locale as an explicit parameter.
  - Serialization is deterministic (sorted keys) and emits UTF-8 text
    unescaped, so stored columns are diffable and queryable with plain
    JSON-path expressions (column->>'locale').

# Concurrency

A Field is a plain in-memory map with no internal locking. It must not be
mutated concurrently; the owning record provides mutual exclusion.
*/
package translatable

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Typed failures surfaced by this package. All are deterministic for a given
// input and safe to match with [errors.Is].
var (
	// ErrMalformed is returned when stored text is not a flat JSON object of
	// string values. The read is unrecoverable; no partial result is produced.
	ErrMalformed = errors.New("translatable: malformed payload")

	// ErrLocaleNotFound is returned when a requested locale has no stored
	// value. Recoverable: callers may retry with a fallback locale.
	ErrLocaleNotFound = errors.New("translatable: locale not found")

	// ErrEmptyLocale is returned when a write supplies an empty locale code.
	// The field is left unchanged.
	ErrEmptyLocale = errors.New("translatable: empty locale code")
)

// Field is the locale→text store for one translatable attribute.
//
// The zero value is a valid, empty Field.
type Field struct {
	values map[string]string
}

// # Constructors

// New returns an empty Field.
func New() Field {
	return Field{}
}

// FromPair returns a Field holding a single translation.
func FromPair(locale, value string) (Field, error) {
	var f Field
	if err := f.Set(locale, value); err != nil {
		return Field{}, err
	}
	return f, nil
}

// FromMap returns a Field holding every entry of values.
func FromMap(values map[string]string) (Field, error) {
	var f Field
	if err := f.SetMany(values); err != nil {
		return Field{}, err
	}
	return f, nil
}

// Parse decodes a serialized column value into a Field.
//
// Empty input, whitespace-only input, and JSON null all decode to an empty
// Field: an absent column means "no translations yet", not an error. Any
// other payload that is not a flat JSON object of string values fails with
// [ErrMalformed].
func Parse(raw []byte) (Field, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Field{}, nil
	}

	values := map[string]string{}
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return Field{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	// A JSON object may carry an empty key; the store never does.
	if _, exists := values[""]; exists {
		return Field{}, fmt.Errorf("%w: empty locale key", ErrMalformed)
	}

	return Field{values: values}, nil
}

// # Access

// Get returns the text stored under locale.
//
// It fails with [ErrLocaleNotFound] if no value is stored for that locale.
// It never substitutes another locale.
func (f Field) Get(locale string) (string, error) {
	value, exists := f.values[locale]
	if !exists {
		return "", fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}
	return value, nil
}

// Has reports whether a value is stored under locale.
func (f Field) Has(locale string) bool {
	_, exists := f.values[locale]
	return exists
}

// Resolve returns the text for locale, falling back to the fallback locale.
//
// The second return value names the locale that satisfied the lookup, so
// callers can report when a fallback was served. If neither locale is
// present, Resolve fails with [ErrLocaleNotFound].
func (f Field) Resolve(locale, fallback string) (value, resolved string, err error) {
	if value, err = f.Get(locale); err == nil {
		return value, locale, nil
	}
	if value, err = f.Get(fallback); err == nil {
		return value, fallback, nil
	}
	return "", "", fmt.Errorf("%w: %q (fallback %q)", ErrLocaleNotFound, locale, fallback)
}

// Locales returns the sorted set of locale codes currently present.
func (f Field) Locales() []string {
	locales := make([]string, 0, len(f.values))
	for locale := range f.values {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Len returns the number of stored translations.
func (f Field) Len() int {
	return len(f.values)
}

// IsEmpty reports whether the field holds no translations.
func (f Field) IsEmpty() bool {
	return len(f.values) == 0
}

// Map returns a copy of the underlying locale→text mapping.
func (f Field) Map() map[string]string {
	out := make(map[string]string, len(f.values))
	for locale, value := range f.values {
		out[locale] = value
	}
	return out
}

// # Mutation

// Set stores value under locale, overwriting any existing entry.
//
// The value may be the empty string; the locale may not. An empty locale
// fails with [ErrEmptyLocale] and leaves the field unchanged.
func (f *Field) Set(locale, value string) error {
	if locale == "" {
		return ErrEmptyLocale
	}
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[locale] = value
	return nil
}

// SetMany stores every entry of values.
//
// Entries are independent, so application order does not affect the outcome.
// All keys are validated before any entry is applied: if any locale is empty
// the call fails with [ErrEmptyLocale] and the field is left unchanged.
func (f *Field) SetMany(values map[string]string) error {
	for locale := range values {
		if locale == "" {
			return ErrEmptyLocale
		}
	}
	for locale, value := range values {
		if err := f.Set(locale, value); err != nil {
			return err
		}
	}
	return nil
}

// Remove deletes the translation stored under locale, if any.
func (f *Field) Remove(locale string) {
	delete(f.values, locale)
}

// # Serialization

// MarshalJSON encodes the field as one flat JSON object.
//
// Output is canonical: keys are sorted, and UTF-8 text is emitted as-is
// rather than as \uXXXX escapes. An empty field encodes as {}. Marshaling a
// valid Field never fails.
func (f Field) MarshalJSON() ([]byte, error) {
	values := f.values
	if values == nil {
		values = map[string]string{}
	}

	// encoding/json sorts map keys; the Encoder detour disables HTML escaping
	// so internationalized content round-trips byte-for-byte.
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(values); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes one flat JSON object, replacing the field's contents.
// It accepts the same inputs as [Parse].
func (f *Field) UnmarshalJSON(raw []byte) error {
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// String returns the canonical serialized form.
func (f Field) String() string {
	encoded, err := f.MarshalJSON()
	if err != nil {
		// Unreachable for string-valued maps; keep the error visible anyway.
		return fmt.Sprintf("translatable: %v", err)
	}
	return string(encoded)
}
