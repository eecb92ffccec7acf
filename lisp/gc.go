package lisp

// Mark marks root and, recursively, every cell reachable from it. A cell
// already marked stops the recursion, which is what makes shared
// structure and cycles safe: the mark bit is the sole protection.
func (i *Interpreter) Mark(root *Cell) {
	if root == nil || root.marked {
		return
	}
	root.marked = true
	switch root.Tag {
	case List, Proc, Quote:
		for _, c := range root.List {
			i.Mark(c)
		}
	}
}

// roots returns the collector's roots: the two environments, the two
// singletons, and the interned special-form markers.
func (i *Interpreter) roots() []*Cell {
	rs := make([]*Cell, 0, 4+len(i.specials))
	rs = append(rs, i.NilVal, i.TeeVal, i.Env, i.Global)
	for _, s := range i.specials {
		rs = append(rs, s)
	}
	return rs
}

// sweep traverses the heap registry. Unmarked cells are unlinked and their
// owned payloads released; marked cells have their mark bit cleared.
func (i *Interpreter) sweep() {
	var prev *Cell
	cur := i.heap.head
	for cur != nil {
		next := cur.next
		if cur.marked {
			cur.marked = false
			prev = cur
		} else {
			if prev == nil {
				i.heap.head = next
			} else {
				prev.next = next
			}
			i.heap.count--
			i.releaseCell(cur)
		}
		cur = next
	}
}

// releaseCell drops a freed cell's owned payload references so nothing it
// held onto outlives the sweep that freed it.
func (i *Interpreter) releaseCell(c *Cell) {
	switch c.Tag {
	case File:
		if c.Port != nil {
			c.Port.Close()
			c.Port = nil
		}
	case List, Proc:
		c.List = nil
	case String:
		c.Str = nil
	}
	c.next = nil
}

// Clean marks from the roots and sweeps: the collector step the REPL runs
// after every top-level evaluation.
func (i *Interpreter) Clean() {
	for _, r := range i.roots() {
		i.Mark(r)
	}
	i.sweep()
}

// sweepAll frees every remaining cell without marking, used by End during
// shutdown.
func (i *Interpreter) sweepAll() {
	cur := i.heap.head
	for cur != nil {
		next := cur.next
		i.releaseCell(cur)
		cur = next
	}
	i.heap.head = nil
	i.heap.count = 0
}
