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

import "strings"

// Resolve merges ref against base, producing a well-formed absolute URI
// string suitable for re-parsing with Parse. It implements the four
// cases of reference resolution:
//
//   - ref is empty and base is nil: ref is returned unchanged.
//   - ref starts with "//": a network-path reference; the result is
//     base.Scheme()+":"+ref with the path portion normalized.
//   - ref starts with "/" (but not "//"): an absolute-path reference;
//     the result is base's connection part plus the normalized path.
//   - ref contains a ':' before any '/': an absolute URI; returned
//     unchanged.
//   - otherwise: a relative reference, merged against the directory of
//     base's path.
//
// Resolve returns ErrNoBase if ref starts with "/" and base is nil.
func Resolve(base *IRI, ref string) (string, error) {
	if ref == "" {
		if base == nil {
			return "", nil
		}
		return base.ConnectionPart() + "/" + base.Path(), nil
	}

	if strings.HasPrefix(ref, "/") {
		if base == nil {
			return "", ErrNoBase
		}
		if strings.HasPrefix(ref[1:], "/") {
			// Network-path reference: "//authority/path...".
			authorityAndPath := ref[2:]
			if slash := strings.IndexByte(authorityAndPath, '/'); slash >= 0 {
				authorityAndPath = authorityAndPath[:slash+1] + normalizePath(authorityAndPath[slash:])
			}
			return base.Scheme() + "://" + authorityAndPath, nil
		}
		return base.ConnectionPart() + "/" + normalizePath(ref), nil
	}

	if containsSchemeColon(ref) {
		return ref, nil
	}

	if base == nil {
		return ref, nil
	}

	tail := dirOf(base.Path()) + ref
	return base.ConnectionPart() + "/" + normalizePath(tail), nil
}

// containsSchemeColon reports whether ref looks like an absolute URI,
// i.e. contains a ':' before the first '/', '?', or '#'.
func containsSchemeColon(ref string) bool {
	for i := 0; i < len(ref); i++ {
		switch ref[i] {
		case ':':
			return true
		case '/', '?', '#':
			return false
		}
	}
	return false
}

// dirOf returns the substring of p up to and including the last '/', or
// the empty string if p has none.
func dirOf(p string) string {
	if idx := strings.LastIndexByte(p, '/'); idx >= 0 {
		return p[:idx+1]
	}
	return ""
}
