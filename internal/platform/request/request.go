// Copyright (c) 2026 Polyglot. All rights reserved.
// Author: thuan.dang.dev@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/thuandang/polyglot/internal/platform/apperr"
	"github.com/thuandang/polyglot/internal/platform/ctxutil"
	"github.com/thuandang/polyglot/internal/platform/sec"
	"github.com/thuandang/polyglot/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Locale returns the locale resolved for the request by the locale middleware,
falling back to the given default when none was resolved.
*/
func Locale(request *http.Request, fallback string) string {
	return ctxutil.GetLocale(request.Context(), fallback)
}

/*
Claims extracts the authenticated editor claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetEditor(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the editor claims.

Returns:
  - *sec.AuthClaims: The authenticated editor claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get editor claims
	claims := ctxutil.GetEditor(request.Context())

	// If the editor is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredEditorID returns the ID of the currently logged-in editor.

Returns:
  - string: Editor UUID
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredEditorID(request *http.Request) (string, error) {

	// Get editor claims
	claims, err := RequiredClaims(request)

	// If the editor is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return claims.EditorID, nil
}
