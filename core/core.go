package core

import (
	"errors"
	"fmt"

	"github.com/dball/conscell/cons"
	"github.com/dball/conscell/ex"
	"github.com/dball/conscell/runtime"
	"github.com/dball/conscell/types"
)

var (
	invalidArity = ex.Ex{Code: "Invalid arity"}
	invalidType  = ex.Ex{Code: "Invalid type"}
)

func arity(name string, args []types.Value, n int) error {
	if len(args) != n {
		return invalidArity.With("command", name).With("want", n).With("got", len(args))
	}
	return nil
}

func cellArg(name string, args []types.Value, i int) (*cons.Cell, error) {
	c, valid := args[i].(*cons.Cell)
	if !valid {
		return nil, invalidType.With("command", name).With("arg", i).With("value", args[i])
	}
	return c, nil
}

func intArg(name string, args []types.Value, i int) (int, error) {
	n, valid := args[i].(types.Integer)
	if !valid {
		return 0, invalidType.With("command", name).With("arg", i).With("value", args[i])
	}
	return int(n), nil
}

// unary builds a command of one chain argument
func unary(name string, fn func(*cons.Cell) (types.Value, error)) Command {
	return func(args ...types.Value) (types.Value, error) {
		if err := arity(name, args, 1); err != nil {
			return nil, err
		}
		c, err := cellArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return fn(c)
	}
}

// binary builds a command of two chain arguments
func binary(name string, fn func(*cons.Cell, *cons.Cell) (types.Value, error)) Command {
	return func(args ...types.Value) (types.Value, error) {
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		a, err := cellArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := cellArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return fn(a, b)
	}
}

// indexed builds a command of a chain and a position
func indexed(name string, fn func(*cons.Cell, int) (types.Value, error)) Command {
	return func(args ...types.Value) (types.Value, error) {
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		c, err := cellArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		n, err := intArg(name, args, 1)
		if err != nil {
			return nil, err
		}
		return fn(c, n)
	}
}

// BuildEnv builds and returns a new environment with the cell commands
func BuildEnv() *Env {
	var env = NewEnv(nil)
	env.Set("length", unary("length", func(c *cons.Cell) (types.Value, error) {
		return types.Integer(c.Length()), nil
	}))
	env.Set("empty?", unary("empty?", func(c *cons.Cell) (types.Value, error) {
		return types.Boolean(c.IsEmpty()), nil
	}))
	env.Set("structure", unary("structure", func(c *cons.Cell) (types.Value, error) {
		return types.String(c.StructureString()), nil
	}))
	env.Set("clone", unary("clone", func(c *cons.Cell) (types.Value, error) {
		return c.Clone(), nil
	}))
	env.Set("structural-clone", unary("structural-clone", func(c *cons.Cell) (types.Value, error) {
		return c.StructuralClone(), nil
	}))
	env.Set("singular", unary("singular", func(c *cons.Cell) (types.Value, error) {
		return c.Singular(), nil
	}))
	env.Set("car", unary("car", func(c *cons.Cell) (types.Value, error) {
		return c.Car(), nil
	}))
	env.Set("cdr", unary("cdr", func(c *cons.Cell) (types.Value, error) {
		if next := c.Next(); next != nil {
			return next.StructuralClone(), nil
		}
		if c.CdrType().Equal(cons.Empty) {
			return c.Factory().ConstructEmpty(), nil
		}
		return c.Cdr(), nil
	}))
	env.Set("last", unary("last", func(c *cons.Cell) (types.Value, error) {
		return c.Last().Car(), nil
	}))
	env.Set("reverse", unary("reverse", func(c *cons.Cell) (types.Value, error) {
		return runtime.Reverse(c), nil
	}))
	env.Set("leaves", unary("leaves", func(c *cons.Cell) (types.Value, error) {
		return runtime.FromList(cons.Standard, runtime.Leaves(c)), nil
	}))
	env.Set("hash", unary("hash", func(c *cons.Cell) (types.Value, error) {
		return types.Integer(c.Hash()), nil
	}))
	env.Set("nth", indexed("nth", func(c *cons.Cell, n int) (types.Value, error) {
		return runtime.Nth(c, n)
	}))
	env.Set("take", indexed("take", func(c *cons.Cell, n int) (types.Value, error) {
		taken, _, err := runtime.TakeDrop(n, c)
		if err != nil {
			return nil, err
		}
		return runtime.FromList(cons.Standard, taken), nil
	}))
	env.Set("drop", indexed("drop", func(c *cons.Cell, n int) (types.Value, error) {
		_, rest, err := runtime.TakeDrop(n, c)
		if err != nil {
			return nil, err
		}
		if rest == nil {
			return c.Factory().ConstructEmpty(), nil
		}
		return rest.StructuralClone(), nil
	}))
	env.Set("remove", indexed("remove", func(c *cons.Cell, n int) (types.Value, error) {
		target := c.NextN(n)
		if n < 0 || target == nil || c.IsEmpty() {
			return nil, invalidType.With("command", "remove").With("n", n)
		}
		next := target.Remove()
		if target == c {
			if next == nil {
				return c.Factory().ConstructEmpty(), nil
			}
			return next, nil
		}
		return c, nil
	}))
	env.Set("split", indexed("split", func(c *cons.Cell, n int) (types.Value, error) {
		target := c.NextN(n)
		if n < 0 || target == nil || c.IsEmpty() {
			return nil, invalidType.With("command", "split").With("n", n)
		}
		back := target.Split()
		front := c
		if back == c {
			front = c.Factory().ConstructEmpty()
		}
		return cons.Standard.List(front, back), nil
	}))
	env.Set("insert", binary("insert", func(a, b *cons.Cell) (types.Value, error) {
		a.Insert(b)
		return a, nil
	}))
	env.Set("append", binary("append", func(a, b *cons.Cell) (types.Value, error) {
		a.Append(b)
		return a, nil
	}))
	env.Set("equal?", binary("equal?", func(a, b *cons.Cell) (types.Value, error) {
		return types.Boolean(a.Equal(b)), nil
	}))
	env.Set("compare", binary("compare", func(a, b *cons.Cell) (types.Value, error) {
		return types.Integer(a.Compare(b)), nil
	}))
	env.Set("concat", func(args ...types.Value) (types.Value, error) {
		cells := make([]*cons.Cell, len(args))
		for i := range args {
			c, err := cellArg("concat", args, i)
			if err != nil {
				return nil, err
			}
			cells[i] = c
		}
		if len(cells) == 0 {
			return cons.Standard.ConstructEmpty(), nil
		}
		return runtime.Concat(cells...), nil
	})
	env.Set("cons", func(args ...types.Value) (types.Value, error) {
		if err := arity("cons", args, 2); err != nil {
			return nil, err
		}
		head := cons.Standard.Single(args[0])
		if tail, valid := args[1].(*cons.Cell); valid {
			if !tail.IsEmpty() {
				head.SetNext(tail)
			}
			return head, nil
		}
		head.SetCdr(args[1], cons.Standard.TypeOf(args[1]))
		return head, nil
	})
	env.Set("list", func(args ...types.Value) (types.Value, error) {
		return cons.Standard.List(args...), nil
	})
	return env
}

// Eval evaluates a form. A list whose car is a symbol bound in env is a
// command call with evaluated arguments; (quote x) is x; anything else is
// itself.
func Eval(env *Env, form types.Value) (types.Value, error) {
	list, valid := form.(*cons.Cell)
	if !valid || list.IsEmpty() {
		return form, nil
	}
	symbol, valid := list.Car().(types.Symbol)
	if !valid {
		return form, nil
	}
	if symbol.Name == "quote" {
		next := list.Next()
		if next == nil || !next.IsLast() {
			return nil, invalidArity.With("command", "quote")
		}
		return next.Car(), nil
	}
	cmd, err := env.Get(symbol.Name)
	if err != nil {
		var undefined Undefined
		if errors.As(err, &undefined) {
			return form, nil
		}
		return nil, err
	}
	var args []types.Value
	for arg := list.Next(); arg != nil; arg = arg.Next() {
		value, err := Eval(env, arg.Car())
		if err != nil {
			return nil, fmt.Errorf("%v: %w", symbol.Name, err)
		}
		args = append(args, value)
	}
	return cmd(args...)
}
