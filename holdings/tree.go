// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package holdings

import (
	"github.com/ledger-works/commodityd/commodityrecord"
)

// Tree - holds the root node of one account's collection
type Tree struct {
	root *Node
}

// Node - one held commodity
type Node struct {
	left   *Node
	right  *Node
	up     *Node
	id     commodityrecord.CommodityIdentifier
	data   commodityrecord.CommodityData
	height int
	nodes  int // size of the subtree rooted here
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if the tree contains no commodities
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of commodities currently held
func (tree *Tree) Count() int {
	return size(tree.root)
}

// Id - read the identifier from a node
func (p *Node) Id() commodityrecord.CommodityIdentifier {
	return p.id
}

// Data - read the payload from a node
func (p *Node) Data() commodityrecord.CommodityData {
	return p.data
}

// Commodity - the identifier/payload pair of a node
func (p *Node) Commodity() commodityrecord.Commodity {
	return commodityrecord.Commodity{
		Id:   p.id,
		Data: p.data,
	}
}

// Search - find a held commodity by identifier only
func (tree *Tree) Search(id commodityrecord.CommodityIdentifier) (commodityrecord.CommodityData, bool) {
	p := tree.root
	for nil != p {
		switch p.id.Compare(id) {
		case +1: // p.id > id
			p = p.left
		case -1: // p.id < id
			p = p.right
		default:
			return p.data, true
		}
	}
	return commodityrecord.CommodityData{}, false
}

// Insert - add a commodity to the collection at its sorted position
//
// returns false without modification if the identifier is already
// present, so a duplicate insert is a detectable no-op
func (tree *Tree) Insert(id commodityrecord.CommodityIdentifier, data commodityrecord.CommodityData) bool {
	root, added := insert(tree.root, id, data)
	if added {
		tree.root = root
		tree.root.up = nil
	}
	return added
}

// Remove - take a commodity out of the collection by identifier
//
// returns the stored payload so a transfer can carry it to the
// destination account without reconstructing it
func (tree *Tree) Remove(id commodityrecord.CommodityIdentifier) (commodityrecord.CommodityData, bool) {
	root, data, removed := remove(tree.root, id)
	if removed {
		tree.root = root
		if nil != tree.root {
			tree.root.up = nil
		}
	}
	return data, removed
}

// Get - positional access to the n'th commodity in identifier order
func (tree *Tree) Get(index int) *Node {
	if index < 0 || index >= size(tree.root) {
		return nil
	}
	p := tree.root
	for {
		nl := size(p.left)
		if index < nl {
			p = p.left
		} else if index > nl {
			index -= nl + 1
			p = p.right
		} else {
			return p
		}
	}
}

// internal: subtree size, nil safe
func size(p *Node) int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// internal: subtree height, nil safe
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// internal: recompute size/height and reattach child parent pointers
func (p *Node) fix() {
	h := height(p.left)
	if hr := height(p.right); hr > h {
		h = hr
	}
	p.height = h + 1
	p.nodes = size(p.left) + size(p.right) + 1
	if nil != p.left {
		p.left.up = p
	}
	if nil != p.right {
		p.right.up = p
	}
}

func rotateLeft(p *Node) *Node {
	r := p.right
	p.right = r.left
	r.left = p
	p.fix()
	r.fix()
	return r
}

func rotateRight(p *Node) *Node {
	l := p.left
	p.left = l.right
	l.right = p
	p.fix()
	l.fix()
	return l
}

// internal: restore the AVL balance condition at p
func rebalance(p *Node) *Node {
	p.fix()
	switch delta := height(p.left) - height(p.right); {
	case delta > 1:
		if height(p.left.right) > height(p.left.left) {
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)
	case delta < -1:
		if height(p.right.left) > height(p.right.right) {
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}

// internal routine for insert
func insert(p *Node, id commodityrecord.CommodityIdentifier, data commodityrecord.CommodityData) (*Node, bool) {
	if nil == p {
		return &Node{
			id:     id,
			data:   data,
			height: 1,
			nodes:  1,
		}, true
	}

	added := false
	switch p.id.Compare(id) {
	case +1: // p.id > id
		p.left, added = insert(p.left, id, data)
	case -1: // p.id < id
		p.right, added = insert(p.right, id, data)
	default:
		return p, false
	}
	if !added {
		return p, false
	}
	return rebalance(p), true
}

// internal routine for remove
func remove(p *Node, id commodityrecord.CommodityIdentifier) (*Node, commodityrecord.CommodityData, bool) {
	if nil == p {
		return nil, commodityrecord.CommodityData{}, false
	}

	removed := false
	var data commodityrecord.CommodityData

	switch p.id.Compare(id) {
	case +1: // p.id > id
		p.left, data, removed = remove(p.left, id)
	case -1: // p.id < id
		p.right, data, removed = remove(p.right, id)
	default:
		data = p.data
		if nil == p.left {
			if nil != p.right {
				p.right.up = nil
			}
			return p.right, data, true
		}
		if nil == p.right {
			p.left.up = nil
			return p.left, data, true
		}
		// two children: the successor replaces this node
		var successor *Node
		p.right, successor = removeFirst(p.right)
		successor.left = p.left
		successor.right = p.right
		return rebalance(successor), data, true
	}
	if !removed {
		return p, commodityrecord.CommodityData{}, false
	}
	return rebalance(p), data, true
}

// internal: detach the lowest node of a subtree
func removeFirst(p *Node) (*Node, *Node) {
	if nil == p.left {
		right := p.right
		if nil != right {
			right.up = nil
		}
		p.left = nil
		p.right = nil
		return right, p
	}
	var first *Node
	p.left, first = removeFirst(p.left)
	return rebalance(p), first
}
