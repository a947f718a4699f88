/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package iri

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyURL is returned when the input, after trimming leading
	// whitespace, has nothing left to parse.
	ErrEmptyURL = errors.New("iri: empty URL")
	// ErrMissingHost is returned when an http or https URL has no host,
	// or an empty one.
	ErrMissingHost = errors.New("iri: missing host for http/https scheme")
	// ErrNoBase is returned by Resolve when ref starts with '/' but no
	// base IRI was supplied.
	ErrNoBase = errors.New("iri: reference starts with '/' but no base given")
)

// ParseError is returned by Parse and ParseWithBase. It wraps a more
// specific sentinel or structural error with the offending input for
// diagnostics.
type ParseError struct {
	URL     string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("iri: %s", e.Message)
	}
	return fmt.Sprintf("iri: %s: %q", e.Message, e.URL)
}

// Unwrap allows errors.Is/errors.As to see through to the sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(url, message string, err error) *ParseError {
	return &ParseError{URL: url, Message: message, Err: err}
}

// Warning describes a non-fatal condition encountered while parsing: the
// core logs-and-continues rather than failing outright, per the
// transcoding- and IDN-failure cases.
type Warning struct {
	Component string
	Err       error
}

// Error implements the error interface so Warning can be handled like any
// other error by a caller that wants to log it.
func (w *Warning) Error() string {
	return fmt.Sprintf("iri: warning on %s: %v", w.Component, w.Err)
}

func (w *Warning) Unwrap() error { return w.Err }
