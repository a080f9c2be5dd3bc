// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thuandang/polyglot/pkg/slug"
)

/*
TestFrom checks the slug pipeline against representative titles, including
accented and non-Latin input.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "About Us", "about-us"},
		{"accents_stripped", "Café Menu", "cafe-menu"},
		{"non_decomposable_letter", "Hej, værelse", "hej-v-relse"},
		{"danish_title", "Om os — kontakt", "om-os-kontakt"},
		{"collapses_separators", "a  --  b", "a-b"},
		{"trims_hyphens", "--hello--", "hello"},
		{"mixed_case_digits", "Page 42: The Answer", "page-42-the-answer"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
