// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathmodel

import "github.com/cpmech/gosl/chk"

// PathPool is a bounded, insertion-ordered set of (filename, *Path)
// pairs. Lookups are by filename; a path loaded once is shared by every
// zone that references its filename.
type PathPool struct {
	max   int
	order []string
	byKey map[string]*Path
}

// NewPathPool allocates an empty pool bounded at max entries.
func NewPathPool(max int) *PathPool {
	return &PathPool{max: max, byKey: make(map[string]*Path, max)}
}

// Get returns the path previously inserted under filename, if any.
func (pp *PathPool) Get(filename string) (*Path, bool) {
	p, ok := pp.byKey[filename]
	return p, ok
}

// Insert adds a newly loaded path under filename, enforcing the pool's
// capacity. Re-inserting an already-present filename is a no-op — it
// returns the existing path instead of growing the pool.
func (pp *PathPool) Insert(filename string, p *Path) *Path {
	if existing, ok := pp.byKey[filename]; ok {
		return existing
	}
	if len(pp.order) >= pp.max {
		chk.Panic("error :- only %d paths reserved for catchment, but trying to load more than %d", pp.max, pp.max)
	}
	pp.byKey[filename] = p
	pp.order = append(pp.order, filename)
	return p
}

// Len returns the number of distinct paths currently pooled.
func (pp *PathPool) Len() int {
	return len(pp.order)
}

// Filenames returns the pooled filenames in insertion order.
func (pp *PathPool) Filenames() []string {
	return pp.order
}
