package lisp

// Eval evaluates x in the lexical scope env and returns the resulting
// Cell. Self-evaluating tags (everything but Symbol and List) are
// returned unchanged; Error and Quote are unimplemented and abort the
// process, per the source material's Open Questions.
func (i *Interpreter) Eval(x *Cell, env *Cell) *Cell {
	switch x.Tag {
	case Symbol:
		pair := i.Find(env, x)
		if pair.IsNil() {
			return i.diagf("unbound symbol: %s", x.Sym)
		}
		return pair.List[1]
	case List:
		return i.evalList(x, env)
	case ErrorCell:
		return i.abortf("evaluated an error cell: %s", x.Sym)
	case Quote:
		return i.abortf("quote: unsupported")
	default:
		// Nil, Tee, Integer, Float, String, Proc, Primitive, File.
		return x
	}
}

func (i *Interpreter) evalList(x *Cell, env *Cell) *Cell {
	if len(x.List) == 0 {
		return i.NilVal
	}
	head := x.List[0]
	if head.Tag == Symbol {
		switch head.Sym {
		case "if":
			return i.evalIf(x, env)
		case "begin":
			return i.evalBegin(x, env)
		case "quote":
			return i.evalQuoteForm(x, env)
		case "set":
			return i.evalSet(x, env)
		case "define":
			return i.evalDefine(x, env)
		case "lambda":
			return i.evalLambda(x, env)
		}
	}
	// The head is an ordinary expression — a symbol bound to a function, or
	// a nested list producing one, such as ((lambda (x) x) 1) — evaluate it
	// and apply the result.
	fn := i.Eval(head, env)
	args := i.allocList()
	for _, a := range x.List[1:] {
		args.List = append(args.List, i.Eval(a, env))
	}
	return i.Apply(fn, args)
}

func (i *Interpreter) evalIf(x *Cell, env *Cell) *Cell {
	if len(x.List) != 4 {
		return i.diagf("if: wrong arity: expected 3 arguments, got %d", len(x.List)-1)
	}
	test := i.Eval(x.List[1], env)
	if test.IsNil() {
		return i.Eval(x.List[3], env)
	}
	return i.Eval(x.List[2], env)
}

func (i *Interpreter) evalBegin(x *Cell, env *Cell) *Cell {
	result := i.NilVal
	for _, arg := range x.List[1:] {
		result = i.Eval(arg, env)
	}
	return result
}

func (i *Interpreter) evalQuoteForm(x *Cell, env *Cell) *Cell {
	if len(x.List) != 2 {
		return i.diagf("quote: wrong arity: expected 1 argument, got %d", len(x.List)-1)
	}
	return x.List[1]
}

func (i *Interpreter) evalSet(x *Cell, env *Cell) *Cell {
	if len(x.List) != 3 {
		return i.diagf("set: wrong arity: expected 2 arguments, got %d", len(x.List)-1)
	}
	sym := x.List[1]
	if sym.Tag != Symbol {
		return i.diagf("set: first argument must be a symbol")
	}
	pair := i.Find(env, sym)
	if pair.IsNil() {
		return i.diagf("set: unbound symbol: %s", sym.Sym)
	}
	val := i.Eval(x.List[2], env)
	pair.List[1] = val
	return val
}

func (i *Interpreter) evalDefine(x *Cell, env *Cell) *Cell {
	if len(x.List) != 3 {
		return i.diagf("define: wrong arity: expected 2 arguments, got %d", len(x.List)-1)
	}
	sym := x.List[1]
	if sym.Tag != Symbol {
		return i.diagf("define: first argument must be a symbol")
	}
	val := i.Eval(x.List[2], env)
	return i.Extend(sym, val, i.Global)
}

func (i *Interpreter) evalLambda(x *Cell, env *Cell) *Cell {
	if len(x.List) != 3 {
		return i.diagf("lambda: wrong arity: expected 2 arguments, got %d", len(x.List)-1)
	}
	params := x.List[1]
	if params.Tag != List {
		return i.diagf("lambda: formal argument list must be a list")
	}
	for _, p := range params.List {
		if p.Tag != Symbol {
			return i.diagf("lambda: formal arguments must be symbols")
		}
	}
	return i.Lambda(params, x.List[2], env)
}

// Apply invokes a Primitive or Proc cell with an already-evaluated List of
// arguments.
func (i *Interpreter) Apply(head, args *Cell) *Cell {
	switch head.Tag {
	case Primitive:
		return head.Fn(args, i)
	case Proc:
		params := head.ProcParams()
		if len(args.List) != len(params.List) {
			return i.diagf("function expects %d arguments, got %d", len(params.List), len(args.List))
		}
		callEnv := i.allocList()
		callEnv.List = append(callEnv.List, head.ProcEnv().List...)
		i.Extensions(callEnv, params, args)
		return i.Eval(head.ProcBody(), callEnv)
	default:
		return i.diagf("apply failed: not a function: %v", head)
	}
}
