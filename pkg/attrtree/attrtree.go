// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attrtree implements a small ordered tree of named attributes.
//
// A Node holds named values and named child nodes, both kept in insertion
// order. Nodes are addressed by slash-separated paths relative to a parent:
//
//	root := attrtree.New("result")
//	root.Set("command", "COPY")
//	root.Child("options").Set("verbose", true)
//	n, ok := root.Lookup("options")
package attrtree

import (
	"bytes"
	"encoding/json"
	"iter"
	"strings"

	"github.com/tidwall/btree"
)

// PathSeparator separates node names in Lookup paths.
const PathSeparator = "/"

// Attr is a single named value of a Node.
type Attr struct {
	Name  string
	Value any
}

// Node is a named container of ordered attributes and child nodes.
// A Node is not safe for concurrent mutation.
type Node struct {
	name string

	attrs     []Attr
	attrIndex *btree.Map[string, int]

	children   []*Node
	childIndex *btree.Map[string, int]
}

// New returns an empty node with the given name.
func New(name string) *Node {
	return &Node{
		name:       name,
		attrIndex:  btree.NewMap[string, int](0),
		childIndex: btree.NewMap[string, int](0),
	}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// Set stores value under name. An existing attribute keeps its position.
func (n *Node) Set(name string, value any) *Node {
	if i, ok := n.attrIndex.Get(name); ok {
		n.attrs[i].Value = value
		return n
	}
	n.attrIndex.Set(name, len(n.attrs))
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
	return n
}

// Get returns the attribute stored under name, or def when absent.
func (n *Node) Get(name string, def any) any {
	if i, ok := n.attrIndex.Get(name); ok {
		return n.attrs[i].Value
	}
	return def
}

// Has reports whether an attribute named name exists.
func (n *Node) Has(name string) bool {
	_, ok := n.attrIndex.Get(name)
	return ok
}

// Len returns the number of attributes.
func (n *Node) Len() int {
	return len(n.attrs)
}

// Child returns the direct child called name, creating it if needed.
func (n *Node) Child(name string) *Node {
	if i, ok := n.childIndex.Get(name); ok {
		return n.children[i]
	}
	c := New(name)
	n.childIndex.Set(name, len(n.children))
	n.children = append(n.children, c)
	return c
}

// Lookup resolves a slash-separated path of descendant names. An empty path
// resolves to n itself.
func (n *Node) Lookup(path string) (*Node, bool) {
	cur := n
	for _, part := range strings.Split(path, PathSeparator) {
		if part == "" {
			continue
		}
		i, ok := cur.childIndex.Get(part)
		if !ok {
			return nil, false
		}
		cur = cur.children[i]
	}
	return cur, true
}

// Attrs iterates over attributes in insertion order.
func (n *Node) Attrs() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, a := range n.attrs {
			if !yield(a.Name, a.Value) {
				return
			}
		}
	}
}

// Children iterates over direct children in insertion order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

// SortedAttrNames returns attribute names in lexical order.
func (n *Node) SortedAttrNames() []string {
	names := make([]string, 0, n.attrIndex.Len())
	n.attrIndex.Scan(func(name string, _ int) bool {
		names = append(names, name)
		return true
	})
	return names
}

// MarshalJSON encodes the node as a JSON object. Attributes come first, then
// children, each in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeKey := func(k string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		return nil
	}
	for _, a := range n.attrs {
		if err := writeKey(a.Name); err != nil {
			return nil, err
		}
		vb, err := json.Marshal(a.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	for _, c := range n.children {
		if err := writeKey(c.name); err != nil {
			return nil, err
		}
		cb, err := c.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(cb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
