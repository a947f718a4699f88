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
	"bytes"
	"strings"
)

// normalizePath collapses "." and ".." segments and redundant "/"
// separators out of path, per RFC 3986 §5.2.4's remove-dot-segments
// procedure. path may be followed by a "?query" or "#fragment" suffix,
// which is copied through unchanged. The result never starts with a
// leading "/" in the stored form (the delimiter that introduces a path
// is consumed separately by the parser/resolver), matching the IRI data
// model's invariant. normalizePath is idempotent.
func normalizePath(path string) string {
	body, suffix := splitPathSuffix(path)
	body = skipLeadingDotSegments(body)

	out := make([]byte, 0, len(body))

	for i := 0; i < len(body); {
		switch {
		case strings.HasPrefix(body[i:], "/../") || body[i:] == "/..":
			// Pop one segment, keeping a trailing slash for the
			// "/.." case to preserve directory-ness (unless nothing is
			// left, since the stored form has no leading slash).
			trailing := body[i:] == "/.."
			if idx := bytes.LastIndexByte(out, '/'); idx >= 0 {
				out = out[:idx]
			} else {
				out = out[:0]
			}
			if trailing {
				if len(out) > 0 {
					out = append(out, '/')
				}
				i += 3
			} else {
				i += 3 // leave the '/' that follows "/.." for the next iteration
			}
		case strings.HasPrefix(body[i:], "/./"):
			i += 2 // drop the '.', keep the following '/'
		case body[i:] == "/.":
			if len(out) > 0 {
				out = append(out, '/')
			}
			i += 2
		case strings.HasPrefix(body[i:], "//"):
			i++ // collapse a run of slashes one at a time
		case body[i] == '/' && len(out) == 0:
			i++ // no leading slash in stored form
		default:
			out = append(out, body[i])
			i++
		}
	}

	return string(out) + suffix
}

// splitPathSuffix separates the leading path body from a trailing
// "?query" or "#fragment", which normalization must not touch.
func splitPathSuffix(path string) (body, suffix string) {
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		return path[:idx], path[idx:]
	}
	return path, ""
}

// skipLeadingDotSegments strips the "rewind past the base-path prefix"
// sequence of ".", "./", "..", "../" tokens that a merged relative
// reference may carry at its start. A leading "/" is not stripped here;
// normalizePath's main loop drops it.
func skipLeadingDotSegments(body string) string {
	for {
		switch {
		case strings.HasPrefix(body, "../"):
			body = body[3:]
		case strings.HasPrefix(body, "./"):
			body = body[2:]
		case body == "..", body == ".":
			return ""
		default:
			return body
		}
	}
}
