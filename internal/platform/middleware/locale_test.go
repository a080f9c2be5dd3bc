// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thuandang/polyglot/internal/platform/constants"
	"github.com/thuandang/polyglot/internal/platform/ctxutil"
	"github.com/thuandang/polyglot/internal/platform/middleware"
)

// resolveThrough runs a request through the locale middleware and returns
// the locale seen by the downstream handler plus the recorded response.
func resolveThrough(t *testing.T, target string, acceptLanguage string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	handler := middleware.ResolveLocale("en", []string{"en", "da", "pt-BR"})

	var seenLocale string
	inner := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenLocale = ctxutil.GetLocale(request.Context(), "missing")
		writer.WriteHeader(http.StatusOK)
	})

	request := httptest.NewRequest(http.MethodGet, target, nil)
	if acceptLanguage != "" {
		request.Header.Set(constants.HeaderAcceptLanguage, acceptLanguage)
	}

	recorder := httptest.NewRecorder()
	handler(inner).ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	return seenLocale, recorder
}

/*
TestResolveLocale_QueryParam verifies that an explicit ?locale= parameter
wins over any Accept-Language header.
*/
func TestResolveLocale_QueryParam(t *testing.T) {
	locale, recorder := resolveThrough(t, "/api/v1/pages?locale=da", "pt-BR")

	assert.Equal(t, "da", locale)
	assert.Equal(t, "da", recorder.Header().Get(constants.HeaderContentLanguage))
}

/*
TestResolveLocale_QueryParamUnsupported verifies that an unsupported override
falls through to header negotiation instead of failing.
*/
func TestResolveLocale_QueryParamUnsupported(t *testing.T) {
	locale, _ := resolveThrough(t, "/api/v1/pages?locale=xx", "da")

	assert.Equal(t, "da", locale)
}

/*
TestResolveLocale_AcceptLanguage verifies BCP 47 negotiation against the
supported set, including region-variant matching.
*/
func TestResolveLocale_AcceptLanguage(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
	}{
		{"exact_match", "da", "da"},
		{"quality_ordering", "da;q=0.9, en;q=1.0", "en"},
		{"region_variant_narrows", "en-GB", "en"},
		{"regional_supported", "pt-BR", "pt-BR"},
		{"unknown_falls_back", "zz", "en"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			locale, _ := resolveThrough(t, "/api/v1/pages", testCase.header)
			assert.Equal(t, testCase.expected, locale)
		})
	}
}

/*
TestResolveLocale_Default verifies the configured default applies when the
request carries no locale signal at all.
*/
func TestResolveLocale_Default(t *testing.T) {
	locale, recorder := resolveThrough(t, "/api/v1/pages", "")

	assert.Equal(t, "en", locale)
	assert.Equal(t, "en", recorder.Header().Get(constants.HeaderContentLanguage))
}
