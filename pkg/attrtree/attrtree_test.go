// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrtree

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetKeepsInsertionOrder(t *testing.T) {
	n := New("root")
	n.Set("zeta", 1).Set("alpha", 2).Set("mid", 3)
	n.Set("zeta", 4)

	var names []string
	var values []any
	for name, v := range n.Attrs() {
		names = append(names, name)
		values = append(values, v)
	}
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid"}, names); diff != "" {
		t.Errorf("Attrs() names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{4, 2, 3}, values); diff != "" {
		t.Errorf("Attrs() values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, n.SortedAttrNames()); diff != "" {
		t.Errorf("SortedAttrNames() mismatch (-want +got):\n%s", diff)
	}
	if n.Len() != 3 {
		t.Errorf("Len() = %d, want 3", n.Len())
	}
}

func TestGetDefault(t *testing.T) {
	n := New("root")
	n.Set("present", "x")
	if got := n.Get("present", "def"); got != "x" {
		t.Errorf("Get(present) = %v, want x", got)
	}
	if got := n.Get("missing", "def"); got != "def" {
		t.Errorf("Get(missing) = %v, want def", got)
	}
	if n.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
}

func TestLookup(t *testing.T) {
	root := New("root")
	root.Child("a").Child("b").Set("k", "v")
	root.Child("c")

	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{path: "", want: "root", wantOK: true},
		{path: "a", want: "a", wantOK: true},
		{path: "a/b", want: "b", wantOK: true},
		{path: "/a/b/", want: "b", wantOK: true},
		{path: "a/x", wantOK: false},
		{path: "c", want: "c", wantOK: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := root.Lookup(tt.path)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.path, ok, tt.wantOK)
			}
			if ok && got.Name() != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.path, got.Name(), tt.want)
			}
		})
	}

	b, _ := root.Lookup("a/b")
	if got := b.Get("k", nil); got != "v" {
		t.Errorf("a/b k = %v, want v", got)
	}
	if root.Child("a") != root.Child("a") {
		t.Error("Child() created a second node for an existing name")
	}
}

func TestChildrenOrder(t *testing.T) {
	root := New("root")
	root.Child("second")
	root.Child("first")
	var names []string
	for c := range root.Children() {
		names = append(names, c.Name())
	}
	if diff := cmp.Diff([]string{"second", "first"}, names); diff != "" {
		t.Errorf("Children() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalJSON(t *testing.T) {
	root := New("result")
	root.Set("command", "COPY")
	opts := root.Child("options")
	opts.Set("verbose", true)
	opts.Set("files", []string{"a", "b"})
	opts.Set("mode", "")

	got, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"command":"COPY","options":{"verbose":true,"files":["a","b"],"mode":""}}`
	if string(got) != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}
