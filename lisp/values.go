package lisp

// Int returns a new Integer cell.
func (i *Interpreter) Int(n int) *Cell {
	c := i.heap.alloc(Integer)
	c.Int = n
	return c
}

// Flt returns a new Float cell.
func (i *Interpreter) Flt(f float64) *Cell {
	c := i.heap.alloc(Float)
	c.Flt = f
	return c
}

// Sym returns a new Symbol cell owning a copy of name.
func (i *Interpreter) Sym(name string) *Cell {
	c := i.heap.alloc(Symbol)
	c.Sym = name
	return c
}

// Str returns a new String cell owning a copy of b.
func (i *Interpreter) Str(b []byte) *Cell {
	c := i.heap.alloc(String)
	c.Str = append([]byte(nil), b...)
	return c
}

// NewList returns a new, empty List cell.
func (i *Interpreter) NewList() *Cell {
	return i.allocList()
}

// ListOf returns a new List cell with the given children.
func (i *Interpreter) ListOf(cells ...*Cell) *Cell {
	c := i.allocList()
	c.List = append(c.List, cells...)
	return c
}

// Prim returns a new Primitive cell wrapping fn.
func (i *Interpreter) Prim(fn PrimitiveFunc) *Cell {
	c := i.heap.alloc(Primitive)
	c.Fn = fn
	return c
}

// Lambda returns a Proc cell with the given params and body, capturing a
// snapshot of env: its element references are copied (not deep-copied),
// so later bindings on the defining scope are not seen by the closure but
// the cells already bound there are shared. Bindings later added to the
// global environment are still found, through Find's fallback to Global.
func (i *Interpreter) Lambda(params, body, env *Cell) *Cell {
	snapshot := i.allocList()
	snapshot.List = append(snapshot.List, env.List...)
	c := i.heap.alloc(Proc)
	c.List = []*Cell{params, body, snapshot}
	return c
}

// Err wraps a diagnostic message as an ErrorCell value.
func (i *Interpreter) Err(msg string) *Cell {
	c := i.heap.alloc(ErrorCell)
	c.Sym = msg
	return c
}
