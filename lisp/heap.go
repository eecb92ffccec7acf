package lisp

// defaultHeapLimit bounds total outstanding cell allocations. Exceeding it
// is fatal, per the allocator being the only component that exits on
// out-of-memory.
const defaultHeapLimit = 1 << 20

// heap is the allocator and the registry of every live cell, walked by the
// sweep phase of the collector. A heap belongs to exactly one Interpreter;
// nothing about it is process-wide.
type heap struct {
	head  *Cell
	count uint64
	limit uint64
	abort func(format string, v ...interface{})
}

func newHeap(limit uint64, abort func(format string, v ...interface{})) *heap {
	if limit == 0 {
		limit = defaultHeapLimit
	}
	return &heap{limit: limit, abort: abort}
}

// alloc returns a freshly zeroed cell of the given tag, registered with the
// heap so the collector can find it. It is the only way a Cell is created.
func (h *heap) alloc(tag Tag) *Cell {
	if h.count >= h.limit {
		h.abort("out of memory")
		return nil
	}
	c := &Cell{Tag: tag, next: h.head}
	h.head = c
	h.count++
	return c
}

func (i *Interpreter) allocList() *Cell {
	return i.heap.alloc(List)
}
