// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// KeyValueMap maps full configuration paths to their stored string values.
type KeyValueMap map[string]string

// Keys returns the map keys in lexical order.
func (m KeyValueMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Node is one level of a hierarchical configuration tree.
//
// A node may carry its own scalar value and children at the same time: the
// key "a" and the key "a/b" both exist in a flat store, so the node for "a"
// holds a value and a child "b". [Node.Value] and [Node.Child] never conflate
// the two.
type Node struct {
	value    string
	hasValue bool
	children map[string]*Node
}

// NewNode returns an empty node with no value and no children.
func NewNode() *Node {
	return &Node{children: make(map[string]*Node)}
}

// BuildTree assembles the flat key/value pairs into a tree. Keys are split on
// sep; empty segments are ignored, and a key with no segments at all sets the
// value of the root node.
//
// The result depends only on pairs and sep, so every backend yields the same
// shape for the same data.
func BuildTree(pairs KeyValueMap, sep rune) *Node {
	root := NewNode()
	for key, value := range pairs {
		root.Insert(SplitPath(key, sep), value)
	}
	return root
}

// SplitPath splits path on sep and drops empty segments.
func SplitPath(path string, sep rune) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == sep })
}

// Insert walks segments from n, creating intermediate nodes as needed, and
// sets value on the last node.
func (n *Node) Insert(segments []string, value string) {
	cur := n
	for _, seg := range segments {
		next, ok := cur.children[seg]
		if !ok {
			next = NewNode()
			cur.children[seg] = next
		}
		cur = next
	}
	cur.value = value
	cur.hasValue = true
}

// Value returns the scalar stored on the node itself, if any.
func (n *Node) Value() (string, bool) {
	return n.value, n.hasValue
}

// Child returns the direct child named name.
func (n *Node) Child(name string) (*Node, bool) {
	child, ok := n.children[name]
	return child, ok
}

// Children returns the names of the direct children in lexical order.
func (n *Node) Children() []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Lookup descends through segments and returns the node found there.
func (n *Node) Lookup(segments ...string) (*Node, bool) {
	cur := n
	for _, seg := range segments {
		next, ok := cur.children[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Get returns the value stored at path, split on sep, below n.
func (n *Node) Get(path string, sep rune) (string, bool) {
	node, ok := n.Lookup(SplitPath(path, sep)...)
	if !ok {
		return "", false
	}
	return node.Value()
}

// Flatten is the inverse of [BuildTree]: it returns every value below n keyed
// by its path relative to n, joined with sep. A value on n itself is keyed by
// the empty string.
func (n *Node) Flatten(sep rune) KeyValueMap {
	out := make(KeyValueMap)
	n.flatten(nil, string(sep), out)
	return out
}

func (n *Node) flatten(prefix []string, sep string, out KeyValueMap) {
	if n.hasValue {
		out[strings.Join(prefix, sep)] = n.value
	}
	for name, child := range n.children {
		child.flatten(append(prefix[:len(prefix):len(prefix)], name), sep, out)
	}
}

// Len returns the number of values stored in the subtree rooted at n.
func (n *Node) Len() int {
	count := 0
	if n.hasValue {
		count++
	}
	for _, child := range n.children {
		count += child.Len()
	}
	return count
}
