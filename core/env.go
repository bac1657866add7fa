package core

import (
	"fmt"

	"github.com/benbjohnson/immutable"
	"github.com/dball/conscell/types"
)

// Command - an operation on evaluated arguments
type Command func(args ...types.Value) (types.Value, error)

// Env binds names to commands
type Env struct {
	Outer    *Env
	Bindings *immutable.Map
}

// Undefined errors
type Undefined struct {
	Name string
}

func (err Undefined) Error() string {
	return fmt.Sprintf("'%v' not found", err.Name)
}

// NewEnv builds an empty env
func NewEnv(outer *Env) *Env {
	return &Env{Outer: outer, Bindings: immutable.NewMap(nil)}
}

// Set binds a command
func (env *Env) Set(name string, cmd Command) {
	env.Bindings = env.Bindings.Set(name, cmd)
}

// Get finds a command here or in an outer env
func (env *Env) Get(name string) (Command, error) {
	value, found := env.Bindings.Get(name)
	if !found {
		if env.Outer == nil {
			return nil, Undefined{Name: name}
		}
		return env.Outer.Get(name)
	}
	return value.(Command), nil
}

// Names lists the bound names, outer names included
func (env *Env) Names() []string {
	seen := map[string]bool{}
	var names []string
	for e := env; e != nil; e = e.Outer {
		itr := e.Bindings.Iterator()
		for !itr.Done() {
			k, _ := itr.Next()
			name := k.(string)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
