package lisp

import (
	"os/exec"
)

// builtin pairs a primitive's name with its implementation, the same table
// shape the teacher registers its builtins with.
type builtin struct {
	name string
	fn   PrimitiveFunc
}

// langBuiltins is the fixed initialization table mapping symbol names to
// host functions, registered into the global environment by addBuiltins.
var langBuiltins = []builtin{
	{"+", builtinAdd},
	{"-", builtinSub},
	{"*", builtinMul},
	{"/", builtinDiv},
	{"mod", builtinMod},

	{"car", builtinCar},
	{"cdr", builtinCdr},
	{"cons", builtinCons},
	{"nth", builtinNth},
	{"length", builtinLength},
	{"reverse", builtinReverse},

	{"scar", builtinScar},
	{"scdr", builtinScdr},
	{"scons", builtinScons},

	{"=", builtinNumEq},
	{"eqt", builtinEqt},

	{"print", builtinPrint},
	{"system", builtinSystem},

	{"flt", builtinFlt},
	{"int", builtinIntOf},
	{"/f", builtinFDiv},

	{"open", builtinOpen},
	{"close", builtinClose},
	{"err:string", builtinErrString},
}

// addBuiltins registers langBuiltins into the global environment. It is
// called once by Init.
func (i *Interpreter) addBuiltins() {
	for _, b := range langBuiltins {
		i.Extend(i.Sym(b.name), i.Prim(b.fn), i.Global)
	}
}

func argErr(i *Interpreter, name string, want, got int) *Cell {
	return i.diagf("%s: wrong arity: expected %d arguments, got %d", name, want, got)
}

func typeErr(i *Interpreter, name string, arg int, want Tag, got Tag) *Cell {
	return i.diagf("%s: argument %d: expected %s, got %s", name, arg, want, got)
}

// --- arithmetic -------------------------------------------------------

func builtinAdd(args *Cell, i *Interpreter) *Cell {
	sum := 0
	for n, a := range args.List {
		if a.Tag != Integer {
			return typeErr(i, "+", n+1, Integer, a.Tag)
		}
		sum += a.Int
	}
	return i.Int(sum)
}

func builtinSub(args *Cell, i *Interpreter) *Cell {
	if len(args.List) == 0 {
		return argErr(i, "-", 1, 0)
	}
	for n, a := range args.List {
		if a.Tag != Integer {
			return typeErr(i, "-", n+1, Integer, a.Tag)
		}
	}
	if len(args.List) == 1 {
		return i.Int(-args.List[0].Int)
	}
	result := args.List[0].Int
	for _, a := range args.List[1:] {
		result -= a.Int
	}
	return i.Int(result)
}

func builtinMul(args *Cell, i *Interpreter) *Cell {
	product := 1
	for n, a := range args.List {
		if a.Tag != Integer {
			return typeErr(i, "*", n+1, Integer, a.Tag)
		}
		product *= a.Int
	}
	return i.Int(product)
}

func builtinDiv(args *Cell, i *Interpreter) *Cell {
	if len(args.List) == 0 {
		return argErr(i, "/", 1, 0)
	}
	for n, a := range args.List {
		if a.Tag != Integer {
			return typeErr(i, "/", n+1, Integer, a.Tag)
		}
	}
	if len(args.List) == 1 {
		if args.List[0].Int == 0 {
			return i.diagf("/: div 0")
		}
		return i.Int(1 / args.List[0].Int)
	}
	result := args.List[0].Int
	for _, a := range args.List[1:] {
		if a.Int == 0 {
			return i.diagf("/: div 0")
		}
		result /= a.Int
	}
	return i.Int(result)
}

func builtinMod(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 2 {
		return argErr(i, "mod", 2, len(args.List))
	}
	a, b := args.List[0], args.List[1]
	if a.Tag != Integer {
		return typeErr(i, "mod", 1, Integer, a.Tag)
	}
	if b.Tag != Integer {
		return typeErr(i, "mod", 2, Integer, b.Tag)
	}
	if b.Int == 0 {
		return i.diagf("mod: div 0")
	}
	return i.Int(a.Int % b.Int)
}

// --- list surgery -------------------------------------------------------

func builtinCar(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "car", 1, len(args.List))
	}
	lis := args.List[0]
	if lis.Tag != List {
		return typeErr(i, "car", 1, List, lis.Tag)
	}
	return i.Car(lis)
}

func builtinCdr(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "cdr", 1, len(args.List))
	}
	lis := args.List[0]
	if lis.Tag != List {
		return typeErr(i, "cdr", 1, List, lis.Tag)
	}
	return i.Cdr(lis)
}

func builtinCons(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 2 {
		return argErr(i, "cons", 2, len(args.List))
	}
	head, tail := args.List[0], args.List[1]
	switch {
	case tail.IsNil():
		return i.ListOf(head)
	case tail.Tag == List:
		result := i.allocList()
		result.List = append(result.List, head)
		result.List = append(result.List, tail.List...)
		return result
	default:
		return i.ListOf(head, tail)
	}
}

func builtinNth(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 2 {
		return argErr(i, "nth", 2, len(args.List))
	}
	idx, lis := args.List[0], args.List[1]
	if idx.Tag != Integer {
		return typeErr(i, "nth", 1, Integer, idx.Tag)
	}
	if lis.Tag != List && lis.Tag != String {
		return i.diagf("nth: argument 2: expected list or string, got %s", lis.Tag)
	}
	return i.Nth(lis, idx.Int)
}

func builtinLength(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "length", 1, len(args.List))
	}
	c := args.List[0]
	if c.Tag != List && c.Tag != String {
		return i.diagf("length: expected list or string, got %s", c.Tag)
	}
	return i.Int(c.Len())
}

func builtinReverse(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "reverse", 1, len(args.List))
	}
	c := args.List[0]
	switch c.Tag {
	case List:
		result := i.allocList()
		result.List = make([]*Cell, len(c.List))
		for n, e := range c.List {
			result.List[len(c.List)-1-n] = e
		}
		return result
	case String:
		b := make([]byte, len(c.Str))
		for n, e := range c.Str {
			b[len(b)-1-n] = e
		}
		return i.Str(b)
	default:
		return i.diagf("reverse: expected list or string, got %s", c.Tag)
	}
}

// --- string variants ------------------------------------------------

func builtinScar(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "scar", 1, len(args.List))
	}
	s := args.List[0]
	if s.Tag != String {
		return typeErr(i, "scar", 1, String, s.Tag)
	}
	if len(s.Str) == 0 {
		return i.NilVal
	}
	return i.Str(s.Str[:1])
}

func builtinScdr(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "scdr", 1, len(args.List))
	}
	s := args.List[0]
	if s.Tag != String {
		return typeErr(i, "scdr", 1, String, s.Tag)
	}
	if len(s.Str) <= 1 {
		return i.NilVal
	}
	return i.Str(s.Str[1:])
}

// builtinScons requires both arguments to be String, resolving the
// canonical reading of the two-argument scons ambiguity in the source
// material: the mixed-type variant was rejected in favor of always
// requiring String.
func builtinScons(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 2 {
		return argErr(i, "scons", 2, len(args.List))
	}
	a, b := args.List[0], args.List[1]
	if a.Tag != String {
		return typeErr(i, "scons", 1, String, a.Tag)
	}
	if b.Tag != String {
		return typeErr(i, "scons", 2, String, b.Tag)
	}
	out := make([]byte, 0, len(a.Str)+len(b.Str))
	out = append(out, a.Str...)
	out = append(out, b.Str...)
	return i.Str(out)
}

// --- comparison / type -------------------------------------------------

func builtinNumEq(args *Cell, i *Interpreter) *Cell {
	if len(args.List) == 0 {
		return i.TeeVal
	}
	first := args.List[0]
	if first.Tag != Integer {
		return typeErr(i, "=", 1, Integer, first.Tag)
	}
	for n, a := range args.List[1:] {
		if a.Tag != Integer {
			return typeErr(i, "=", n+2, Integer, a.Tag)
		}
		if a.Int != first.Int {
			return i.NilVal
		}
	}
	return i.TeeVal
}

func builtinEqt(args *Cell, i *Interpreter) *Cell {
	if len(args.List) == 0 {
		return i.TeeVal
	}
	tag := args.List[0].Tag
	for _, a := range args.List[1:] {
		if a.Tag != tag {
			return i.NilVal
		}
	}
	return i.TeeVal
}

// --- I/O ----------------------------------------------------------------

func builtinPrint(args *Cell, i *Interpreter) *Cell {
	for _, a := range args.List {
		if i.Printer != nil {
			i.Printer(i.Output, a)
			continue
		}
		i.Output.Puts([]byte(a.String()))
	}
	return i.NilVal
}

// --- system ---------------------------------------------------------

func builtinSystem(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "system", 1, len(args.List))
	}
	cmdline := args.List[0]
	if cmdline.Tag != String {
		return typeErr(i, "system", 1, String, cmdline.Tag)
	}
	cmd := exec.Command("/bin/sh", "-c", string(cmdline.Str))
	err := cmd.Run()
	if err == nil {
		return i.Int(0)
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		code := exitErr.ExitCode()
		if code < 0 {
			return i.NilVal
		}
		return i.Int(code)
	}
	return i.NilVal
}

// --- float casts (domain-stack addition, see SPEC_FULL.md §3) ----------

func builtinFlt(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "flt", 1, len(args.List))
	}
	a := args.List[0]
	switch a.Tag {
	case Integer:
		return i.Flt(float64(a.Int))
	case Float:
		return a
	default:
		return typeErr(i, "flt", 1, Integer, a.Tag)
	}
}

func builtinIntOf(args *Cell, i *Interpreter) *Cell {
	if len(args.List) != 1 {
		return argErr(i, "int", 1, len(args.List))
	}
	a := args.List[0]
	switch a.Tag {
	case Float:
		return i.Int(int(a.Flt))
	case Integer:
		return a
	default:
		return typeErr(i, "int", 1, Float, a.Tag)
	}
}

func builtinFDiv(args *Cell, i *Interpreter) *Cell {
	if len(args.List) == 0 {
		return argErr(i, "/f", 1, 0)
	}
	vals := make([]float64, len(args.List))
	for n, a := range args.List {
		switch a.Tag {
		case Float:
			vals[n] = a.Flt
		case Integer:
			vals[n] = float64(a.Int)
		default:
			return typeErr(i, "/f", n+1, Float, a.Tag)
		}
	}
	if len(vals) == 1 {
		if vals[0] == 0 {
			return i.diagf("/f: div 0")
		}
		return i.Flt(1 / vals[0])
	}
	result := vals[0]
	for _, v := range vals[1:] {
		if v == 0 {
			return i.diagf("/f: div 0")
		}
		result /= v
	}
	return i.Flt(result)
}
