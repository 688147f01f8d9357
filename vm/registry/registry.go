package registry

import (
	"fmt"

	"github.com/aicredit/go-aicredit/vm/core"
)

// New creates Registry instance.
func New() *Registry {
	return &Registry{programs: map[core.Pubkey]core.Program{}}
}

// Registry stores mapping from program id to the program.
type Registry struct {
	programs map[core.Pubkey]core.Program
}

// Get program for the id if it exists.
func (r *Registry) Get(id core.Pubkey) core.Program {
	return r.programs[id]
}

// Register program with the id. Panics if id is already taken.
func (r *Registry) Register(id core.Pubkey, program core.Program) {
	if _, exist := r.programs[id]; exist {
		panic(fmt.Sprintf("%s already registered", id))
	}
	r.programs[id] = program
}
