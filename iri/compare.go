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

// Compare orders two IRIs as described in RFC 2616 §3.2.3: path
// (case-insensitive), then query (case-insensitive), then scheme (by
// name; the known schemes are interned, so equal pointers short-circuit),
// then port (string comparison when both are set and differ), then host
// (case-sensitive, since it is already lowercase). Fragment is
// deliberately never consulted.
func Compare(a, b *IRI) int {
	if n := strings.Compare(strings.ToLower(a.path), strings.ToLower(b.path)); n != 0 {
		return n
	}
	if n := strings.Compare(strings.ToLower(a.query), strings.ToLower(b.query)); n != 0 {
		return n
	}
	if a.scheme != b.scheme && a.scheme.name != b.scheme.name {
		if a.scheme.name < b.scheme.name {
			return -1
		}
		return 1
	}
	if a.hasPort && b.hasPort && a.port != b.port {
		if n := strings.Compare(a.port, b.port); n != 0 {
			return n
		}
	}
	return strings.Compare(a.host, b.host)
}
