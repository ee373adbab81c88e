// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package holdings

// First - return the node with the lowest identifier
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Next - given a node, return the node with the next highest
// identifier or nil if no more nodes
func (p *Node) Next() *Node {
	if nil != p.right {
		return p.right.first()
	}
	up := p.up
	for nil != up && p == up.right {
		p = up
		up = up.up
	}
	return up
}
