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

// Package iri implements IRI/URI parsing, normalization, reference
// resolution, and component escaping for an HTTP/HTTPS retrieval client.
//
// It decomposes a raw, possibly non-UTF-8, possibly internationalized
// location string into a normalized, component-decomposed IRI, and can
// reverse that decomposition for on-the-wire use or local filename
// derivation.
//
// The package is synchronous and allocates a new *IRI per call; there is
// no shared mutable state between IRIs and no background goroutines. An
// *IRI returned by Parse or ParseWithBase is safe for concurrent
// read-only use by multiple goroutines: every field, including the
// ConnectionPart cache, is computed before the value is returned, so
// there is no first-read race to guard against.
package iri
