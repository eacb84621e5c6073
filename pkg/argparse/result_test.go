// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/argspec/pkg/schema"
)

func parseCopy(t *testing.T, args ...string) *Result {
	t.Helper()
	e := mustEngine(t, testSchema())
	res, err := e.Parse(append([]string{"COPY"}, args...))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return res
}

func TestResultAccessors(t *testing.T) {
	res := parseCopy(t, "-src", "a", "b", "-target", "out", "-v")

	wantOpts := []string{"src", "dst", "verbose", "quiet", "mode", "level", "force"}
	if diff := cmp.Diff(wantOpts, res.Options()); diff != "" {
		t.Errorf("Options() mismatch (-want +got):\n%s", diff)
	}
	if got := res.String("d"); got != "out" {
		t.Errorf("String(d) = %q, want out", got)
	}
	if got := res.String("SRC"); got != "a b" {
		t.Errorf("String(SRC) = %q, want %q", got, "a b")
	}
	if !res.Bool("verbose") || res.String("v") != "true" {
		t.Errorf("verbose = %v/%q, want true", res.Bool("verbose"), res.String("v"))
	}
	if res.Bool("quiet") || res.Has("quiet") || res.String("quiet") != "" {
		t.Error("quiet reported as present")
	}
	if _, ok := res.Get("legacy"); ok {
		t.Error("Get(legacy) found a disabled option")
	}
	if _, ok := res.Get("nope"); ok {
		t.Error("Get(nope) found an unknown option")
	}

	vals := res.Strings("src")
	vals[0] = "changed"
	if got := res.Strings("src"); got[0] != "a" {
		t.Errorf("Strings() exposes internal storage: %q", got)
	}

	v, _ := res.Get("src")
	v.Values[1] = "changed"
	if got, _ := res.Get("s"); got.Values[1] != "b" {
		t.Errorf("Get() exposes internal storage: %q", got.Values)
	}
	opts, _ := res.Tree().Lookup("options")
	if diff := cmp.Diff([]string{"a", "b"}, opts.Get("src", nil)); diff != "" {
		t.Errorf("Tree() src mismatch after Get() change (-want +got):\n%s", diff)
	}
}

func TestResultCodes(t *testing.T) {
	res := parseCopy(t, "-src", "a", "-mode", "b", "7", "C", "-level", "high")

	codes, ok := res.Codes("mode")
	if !ok {
		t.Fatal("Codes(mode) not ok")
	}
	if diff := cmp.Diff([]int64{20, 7, 30}, codes); diff != "" {
		t.Errorf("Codes(mode) mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"beta", "", "gamma"}, res.Describe("mode")); diff != "" {
		t.Errorf("Describe(mode) mismatch (-want +got):\n%s", diff)
	}

	// Without RestrictionCodes the position is the code.
	codes, ok = res.Codes("level")
	if !ok || !cmp.Equal(codes, []int64{1}) {
		t.Errorf("Codes(level) = %v, %v; want [1], true", codes, ok)
	}
	if _, ok := res.Codes("src"); ok {
		t.Error("Codes(src) ok for an unrestricted option")
	}
}

func TestResultTree(t *testing.T) {
	res := parseCopy(t, "-src", "a", "b", "-v")
	tree := res.Tree()

	if got := tree.Get("command", nil); got != "COPY" {
		t.Errorf("command = %v, want COPY", got)
	}
	opts, ok := tree.Lookup("options")
	if !ok {
		t.Fatal("options node missing")
	}
	if got := opts.Get("verbose", nil); got != true {
		t.Errorf("verbose = %v, want true", got)
	}
	if got := opts.Get("quiet", nil); got != "" {
		t.Errorf("quiet = %v, want empty string", got)
	}
	if opts.Has("legacy") {
		t.Error("disabled option exported")
	}

	b, err := json.Marshal(tree)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"command":"COPY","options":{"src":["a","b"],"dst":"","verbose":true,"quiet":"","mode":"","level":"","force":""}}`
	if string(b) != want {
		t.Errorf("JSON = %s\nwant   %s", b, want)
	}
}

func TestResultForbiddenBoundary(t *testing.T) {
	s := schema.Schema{Commands: []schema.Command{{
		Name:    "RUN",
		Options: []schema.Option{{Name: "dry", Values: schema.ValueForbidden}},
	}}}
	e := mustEngine(t, s)

	res, err := e.Parse([]string{"RUN", "-dry"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v, _ := res.Get("dry"); !v.Flag || v.Any() != true {
		t.Errorf("dry = %+v, want flag", v)
	}

	res, err = e.Parse([]string{"RUN"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v, _ := res.Get("dry"); !v.IsEmpty() || v.Any() != "" {
		t.Errorf("dry = %+v, want empty", v)
	}

	if _, err := e.Parse([]string{"RUN", "-dry", "yes"}); err == nil {
		t.Error("Parse() accepted a value for a forbidden option")
	}
}
