// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

package middleware

import (
	"net/http"

	"golang.org/x/text/language"

	"github.com/thuandang/polyglot/internal/platform/constants"
	"github.com/thuandang/polyglot/internal/platform/ctxutil"
)

// ResolveLocale negotiates the request locale and injects it into the context.
//
// # Resolution Order
//  1. Explicit `?locale=` query parameter (exact match against supported locales).
//  2. Accept-Language header, matched against the supported set via BCP 47
//     language matching (so "en-GB" resolves to "en" when only "en" is configured).
//  3. The configured default locale.
//
// The resolved locale is echoed back in the Content-Language response header
// so clients always know which locale the payload was rendered in.
func ResolveLocale(defaultLocale string, supportedLocales []string) func(http.Handler) http.Handler {

	// Build the matcher once at mount time. The supported set is static for
	// the lifetime of the process; the matcher breaks ties toward the first
	// tag, so the default locale must be first.
	tags := make([]language.Tag, 0, len(supportedLocales)+1)
	tagLocales := make([]string, 0, len(supportedLocales)+1)

	appendLocale := func(locale string) {
		tag, err := language.Parse(locale)
		if err != nil {
			return
		}
		tags = append(tags, tag)
		tagLocales = append(tagLocales, locale)
	}

	appendLocale(defaultLocale)
	for _, locale := range supportedLocales {
		if locale != defaultLocale {
			appendLocale(locale)
		}
	}
	matcher := language.NewMatcher(tags)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			resolved := resolveRequestLocale(request, defaultLocale, supportedLocales, matcher, tagLocales)

			ctx := ctxutil.WithLocale(request.Context(), resolved)
			writer.Header().Set(constants.HeaderContentLanguage, resolved)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// resolveRequestLocale applies the resolution order for a single request.
func resolveRequestLocale(
	request *http.Request,
	defaultLocale string,
	supportedLocales []string,
	matcher language.Matcher,
	tagLocales []string,
) string {

	// 1. Explicit query parameter override
	if param := request.URL.Query().Get(constants.QueryParamLocale); param != "" {
		for _, locale := range supportedLocales {
			if locale == param {
				return param
			}
		}
		// An unsupported override falls through to negotiation rather than
		// erroring, so stale client links keep working.
	}

	// 2. Accept-Language negotiation
	if header := request.Header.Get(constants.HeaderAcceptLanguage); header != "" {
		if requested, _, err := language.ParseAcceptLanguage(header); err == nil && len(requested) > 0 {
			_, index, confidence := matcher.Match(requested...)
			if confidence > language.No && index < len(tagLocales) {
				return tagLocales[index]
			}
		}
	}

	// 3. Configured default
	return defaultLocale
}
