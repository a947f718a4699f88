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
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultSourceEncoding is the source encoding assumed when a caller does
// not supply one, matching the retrieval tool's historical default.
const DefaultSourceEncoding = "iso-8859-1"

// NeedsEncoding reports whether s contains any byte greater than 0x7F,
// i.e. whether it might require transcoding to UTF-8. It triggers on any
// such byte, including bytes that are already part of valid UTF-8 — the
// caller is responsible for passing an accurate source encoding.
func NeedsEncoding(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return true
		}
	}
	return false
}

// lookupEncoding resolves a caller-supplied encoding label to a
// golang.org/x/text/encoding.Encoding. The empty label and labels that
// case-insensitively name UTF-8 are treated specially by ToUTF8 and never
// reach here. A label that IANA registers but the transcoder does not
// support is reported as an error, like an unknown label.
func lookupEncoding(label string) (encoding.Encoding, error) {
	if strings.EqualFold(label, DefaultSourceEncoding) || strings.EqualFold(label, "latin1") {
		return charmap.ISO8859_1, nil
	}
	enc, err := ianaindex.IANA.Encoding(label)
	if err == nil && enc == nil {
		err = errors.New("iri: unsupported encoding " + label)
	}
	return enc, err
}

// ToUTF8 transcodes s from fromEncoding to UTF-8. If fromEncoding is
// empty, DefaultSourceEncoding is assumed. If fromEncoding
// case-insensitively names UTF-8, s is returned unchanged (a copy is not
// needed since Go strings are immutable). On any transcoder failure
// (unknown label or invalid byte sequence for that encoding) the original
// bytes are returned along with a non-nil error; the caller is expected
// to log the error and keep going, per the charset adapter's
// log-and-continue contract.
func ToUTF8(s, fromEncoding string) (string, error) {
	if fromEncoding == "" {
		fromEncoding = DefaultSourceEncoding
	}
	if strings.EqualFold(fromEncoding, "utf-8") || strings.EqualFold(fromEncoding, "utf8") {
		return s, nil
	}

	enc, err := lookupEncoding(fromEncoding)
	if err != nil {
		return s, err
	}

	decoded, err := enc.NewDecoder().String(s)
	if err != nil {
		return s, err
	}
	return decoded, nil
}

// fromUTF8 transcodes s from UTF-8 to toEncoding, for callers deriving a
// local filename in a specific target encoding. On failure the original
// UTF-8 bytes are returned along with a non-nil error.
func fromUTF8(s, toEncoding string) (string, error) {
	if strings.EqualFold(toEncoding, "utf-8") || strings.EqualFold(toEncoding, "utf8") {
		return s, nil
	}

	enc, err := lookupEncoding(toEncoding)
	if err != nil {
		return s, err
	}

	encoded, err := enc.NewEncoder().String(s)
	if err != nil {
		return s, err
	}
	return encoded, nil
}
