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

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no dot segments", in: "a/b/c", want: "a/b/c"},
		{name: "leading slash dropped", in: "/a/b", want: "a/b"},
		{name: "single dot segment", in: "a/./b", want: "a/b"},
		{name: "trailing single dot", in: "a/b/.", want: "a/b/"},
		{name: "dot-dot pops a segment", in: "a/b/../c", want: "a/c"},
		{name: "trailing dot-dot preserves directory-ness", in: "a/b/..", want: "a/"},
		{name: "double slash collapses", in: "a//b", want: "a/b"},
		{name: "excess dot-dot clamps at root", in: "a/../../b", want: "b"},
		{name: "query suffix untouched", in: "a/../b?x=../y", want: "b?x=../y"},
		{name: "fragment suffix untouched", in: "a/../b#../y", want: "b#../y"},
		{name: "leading dot-dot stripped", in: "../a/b", want: "a/b"},
		{name: "leading dot stripped", in: "./a/b", want: "a/b"},
		{name: "bare dot-dot", in: "..", want: ""},
		{name: "bare dot", in: ".", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePath(tt.in); got != tt.want {
				t.Errorf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePathIdempotent(t *testing.T) {
	inputs := []string{
		"a/b/../c", "/a/./b/../c/", "a//b///c", "../../a", "a/b/..", ".", "..", "",
	}
	for _, in := range inputs {
		once := normalizePath(in)
		twice := normalizePath(once)
		if once != twice {
			t.Errorf("normalizePath not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}
