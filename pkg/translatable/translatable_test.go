// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

package translatable_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thuandang/polyglot/pkg/translatable"
)

/*
TestParse_LenientEmptyInput verifies that an absent column decodes to an
empty field rather than an error.
*/
func TestParse_LenientEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t"},
		{"json_null", "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, err := translatable.Parse([]byte(tt.raw))
			require.NoError(t, err)
			assert.True(t, field.IsEmpty())
			assert.Empty(t, field.Locales())
		})
	}
}

/*
TestParse_Malformed verifies that non-object payloads are rejected with
ErrMalformed and produce no partial field.
*/
func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"array", "[1,2,3]"},
		{"scalar_number", "42"},
		{"scalar_string", `"hello"`},
		{"not_json", "not json"},
		{"truncated_object", `{"en":"Hello"`},
		{"non_string_value", `{"en":1}`},
		{"nested_object", `{"en":{"x":"y"}}`},
		{"empty_locale_key", `{"":"Hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := translatable.Parse([]byte(tt.raw))
			assert.ErrorIs(t, err, translatable.ErrMalformed)
		})
	}
}

/*
TestField_GetSet covers the concrete storage scenario: read an existing
column, add a locale, and serialize all pairs back out.
*/
func TestField_GetSet(t *testing.T) {
	field, err := translatable.Parse([]byte(`{"en":"Hello","da":"Hej"}`))
	require.NoError(t, err)

	danish, err := field.Get("da")
	require.NoError(t, err)
	assert.Equal(t, "Hej", danish)

	require.NoError(t, field.Set("de", "Hallo"))

	german, err := field.Get("de")
	require.NoError(t, err)
	assert.Equal(t, "Hallo", german)

	// Keys are sorted, so the serialized form is fully deterministic.
	assert.Equal(t, `{"da":"Hej","de":"Hallo","en":"Hello"}`, field.String())
	assert.Equal(t, []string{"da", "de", "en"}, field.Locales())
}

/*
TestField_MissingLocale verifies the no-fallback contract: an absent locale
is a typed failure, never a silent substitution.
*/
func TestField_MissingLocale(t *testing.T) {
	field, err := translatable.FromMap(map[string]string{"en": "Hello", "da": "Hej"})
	require.NoError(t, err)

	value, err := field.Get("fr")
	assert.ErrorIs(t, err, translatable.ErrLocaleNotFound)
	assert.Empty(t, value)
	// The failed read names the locale for caller-side diagnostics.
	assert.Contains(t, err.Error(), `"fr"`)
}

/*
TestField_EmptyLocaleRejected verifies that writes with an empty locale key
fail and leave the field unchanged.
*/
func TestField_EmptyLocaleRejected(t *testing.T) {
	field, err := translatable.FromPair("en", "Hello")
	require.NoError(t, err)

	assert.ErrorIs(t, field.Set("", "x"), translatable.ErrEmptyLocale)
	assert.Equal(t, `{"en":"Hello"}`, field.String())

	_, err = translatable.FromPair("", "x")
	assert.ErrorIs(t, err, translatable.ErrEmptyLocale)
}

/*
TestField_SetIdempotentAndIsolated verifies two algebraic properties of Set:
repeating a write changes nothing, and writing one locale never disturbs
another.
*/
func TestField_SetIdempotentAndIsolated(t *testing.T) {
	field, err := translatable.FromMap(map[string]string{"en": "Hello", "da": "Hej"})
	require.NoError(t, err)

	require.NoError(t, field.Set("en", "Hi"))
	require.NoError(t, field.Set("en", "Hi"))

	english, err := field.Get("en")
	require.NoError(t, err)
	assert.Equal(t, "Hi", english)

	// Isolation: "da" is untouched by writes to "en".
	danish, err := field.Get("da")
	require.NoError(t, err)
	assert.Equal(t, "Hej", danish)
	assert.Equal(t, 2, field.Len())
}

/*
TestField_SetMany verifies bulk writes, including the all-or-nothing behavior
when one key is empty.
*/
func TestField_SetMany(t *testing.T) {
	t.Run("applies_all_entries", func(t *testing.T) {
		field := translatable.New()
		err := field.SetMany(map[string]string{"en": "Hello", "da": "Hej", "de": "Hallo"})
		require.NoError(t, err)
		assert.Equal(t, []string{"da", "de", "en"}, field.Locales())
	})

	t.Run("empty_key_leaves_field_unchanged", func(t *testing.T) {
		field, err := translatable.FromPair("en", "Hello")
		require.NoError(t, err)

		err = field.SetMany(map[string]string{"da": "Hej", "": "boom"})
		assert.ErrorIs(t, err, translatable.ErrEmptyLocale)
		assert.Equal(t, `{"en":"Hello"}`, field.String())
	})

	t.Run("empty_value_is_allowed", func(t *testing.T) {
		field := translatable.New()
		require.NoError(t, field.SetMany(map[string]string{"en": ""}))
		english, err := field.Get("en")
		require.NoError(t, err)
		assert.Empty(t, english)
		assert.True(t, field.Has("en"))
	})
}

/*
TestField_Remove verifies that forgetting a translation drops exactly one
locale.
*/
func TestField_Remove(t *testing.T) {
	field, err := translatable.FromMap(map[string]string{"en": "Hello", "da": "Hej"})
	require.NoError(t, err)

	field.Remove("da")
	assert.False(t, field.Has("da"))
	assert.Equal(t, []string{"en"}, field.Locales())

	// Removing an absent locale is a no-op.
	field.Remove("fr")
	assert.Equal(t, 1, field.Len())
}

/*
TestField_RoundTrip verifies that serialize→deserialize preserves exactly the
stored key/value pairs, including non-ASCII text.
*/
func TestField_RoundTrip(t *testing.T) {
	original, err := translatable.FromMap(map[string]string{
		"en": "Hello, room",
		"da": "Hej, værelse",
		"ja": "こんにちは",
	})
	require.NoError(t, err)

	encoded, err := original.MarshalJSON()
	require.NoError(t, err)

	// Unicode is emitted verbatim, never as numeric escape sequences.
	assert.Contains(t, string(encoded), "værelse")
	assert.Contains(t, string(encoded), "こんにちは")
	assert.NotContains(t, string(encoded), `\u`)

	decoded, err := translatable.Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, original.Map(), decoded.Map())
}

/*
TestField_Resolve verifies the explicit fallback helper: it reports which
locale satisfied the lookup and fails when neither does.
*/
func TestField_Resolve(t *testing.T) {
	field, err := translatable.FromMap(map[string]string{"en": "Hello", "da": "Hej"})
	require.NoError(t, err)

	t.Run("direct_hit", func(t *testing.T) {
		value, resolved, err := field.Resolve("da", "en")
		require.NoError(t, err)
		assert.Equal(t, "Hej", value)
		assert.Equal(t, "da", resolved)
	})

	t.Run("fallback_hit", func(t *testing.T) {
		value, resolved, err := field.Resolve("fr", "en")
		require.NoError(t, err)
		assert.Equal(t, "Hello", value)
		assert.Equal(t, "en", resolved)
	})

	t.Run("both_missing", func(t *testing.T) {
		_, _, err := field.Resolve("fr", "es")
		assert.ErrorIs(t, err, translatable.ErrLocaleNotFound)
	})

	t.Run("case_sensitive_keys", func(t *testing.T) {
		// "en" and "en-US" are unrelated keys: no normalization.
		_, err := field.Get("en-US")
		assert.ErrorIs(t, err, translatable.ErrLocaleNotFound)
		_, err = field.Get("EN")
		assert.ErrorIs(t, err, translatable.ErrLocaleNotFound)
	})
}

/*
TestField_SQLInterfaces verifies the database/sql bridge used by pgx when the
field maps onto a JSONB column.
*/
func TestField_SQLInterfaces(t *testing.T) {
	t.Run("scan_bytes", func(t *testing.T) {
		var field translatable.Field
		require.NoError(t, field.Scan([]byte(`{"en":"Hello"}`)))
		assert.Equal(t, []string{"en"}, field.Locales())
	})

	t.Run("scan_string", func(t *testing.T) {
		var field translatable.Field
		require.NoError(t, field.Scan(`{"da":"Hej"}`))
		assert.True(t, field.Has("da"))
	})

	t.Run("scan_null_column", func(t *testing.T) {
		var field translatable.Field
		require.NoError(t, field.Scan(nil))
		assert.True(t, field.IsEmpty())
	})

	t.Run("scan_malformed", func(t *testing.T) {
		var field translatable.Field
		assert.ErrorIs(t, field.Scan([]byte(`[1,2]`)), translatable.ErrMalformed)
	})

	t.Run("scan_unsupported_type", func(t *testing.T) {
		var field translatable.Field
		assert.ErrorIs(t, field.Scan(42), translatable.ErrMalformed)
	})

	t.Run("value_empty_is_object", func(t *testing.T) {
		value, err := translatable.New().Value()
		require.NoError(t, err)
		assert.Equal(t, "{}", string(value.([]byte)))
	})

	t.Run("value_round_trips", func(t *testing.T) {
		original, err := translatable.FromPair("da", "Hej, værelse")
		require.NoError(t, err)

		value, err := original.Value()
		require.NoError(t, err)

		var decoded translatable.Field
		require.NoError(t, decoded.Scan(value))
		assert.Equal(t, original.Map(), decoded.Map())
	})
}

/*
TestField_DeterministicSerialization verifies that two fields with identical
contents always serialize to identical bytes.
*/
func TestField_DeterministicSerialization(t *testing.T) {
	values := map[string]string{"en": "a", "da": "b", "de": "c", "fr": "d", "ja": "e"}

	first, err := translatable.FromMap(values)
	require.NoError(t, err)

	var second translatable.Field
	// Insert in a different order to rule out insertion-order dependence.
	for _, locale := range []string{"ja", "fr", "de", "da", "en"} {
		require.NoError(t, second.Set(locale, values[locale]))
	}

	assert.Equal(t, first.String(), second.String())
	assert.True(t, strings.HasPrefix(first.String(), `{"da"`))
}
