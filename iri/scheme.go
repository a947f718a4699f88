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

// scheme pairs a canonical scheme name with its default port, if any.
// Recognized schemes are interned as package-level *scheme values, so
// equal pointers mean equal schemes; unrecognized schemes get their own
// heap-allocated *scheme with an empty defaultPort, and Compare falls
// back to the name for them.
type scheme struct {
	name        string
	defaultPort string
}

// Recognized schemes. Additions here extend default-port handling without
// changing parse acceptance of other schemes.
var (
	schemeHTTP  = &scheme{name: "http", defaultPort: "80"}
	schemeHTTPS = &scheme{name: "https", defaultPort: "443"}

	knownSchemes = map[string]*scheme{
		"http":  schemeHTTP,
		"https": schemeHTTPS,
	}
)

// lookupScheme returns the interned *scheme for name if it is one of the
// known schemes (case-insensitive match), or a freshly allocated *scheme
// with the lowercased name and no default port otherwise.
func lookupScheme(name string) *scheme {
	lowered := lowerASCIIInPlace(name)
	if s, ok := knownSchemes[lowered]; ok {
		return s
	}
	return &scheme{name: lowered}
}

// requiresHost reports whether this scheme requires a non-empty host.
func (s *scheme) requiresHost() bool {
	return s == schemeHTTP || s == schemeHTTPS
}
