package semantics

import "github.com/pikelet-go/pikelet/internal/terms"

// envNode is one cell of a persistent, singly-linked local-value
// environment. Because Env is an immutable value type (a node pointer
// plus cached size), Push never mutates an existing node: a snapshot is
// just copying the Env struct, which is O(1) and automatically immune to
// later Push calls on the original — the cheap copy-on-write contract
// spec §4.1 asks closures to uphold.
type envNode struct {
	value Value
	next  *envNode
	size  terms.LocalSize
}

// Env is the local-value environment, grown on the right (innermost) end
// as binders are entered.
type Env struct {
	head *envNode
}

// NewEnv returns the empty environment.
func NewEnv() Env {
	return Env{}
}

// Size returns the number of bindings in scope.
func (e Env) Size() terms.LocalSize {
	if e.head == nil {
		return 0
	}
	return e.head.size
}

// NextLevel returns the level the next Push will occupy.
func (e Env) NextLevel() terms.LocalLevel {
	return e.Size().NextLevel()
}

// Push returns a new environment with value bound as the new innermost
// entry. The receiver is left untouched.
func (e Env) Push(value Value) Env {
	return Env{head: &envNode{value: value, next: e.head, size: e.Size().Increment()}}
}

// Get returns the value bound at de Bruijn index i (0 = innermost), and
// false if i escapes the environment's current size.
func (e Env) Get(index terms.LocalIndex) (Value, bool) {
	n := e.head
	i := uint32(index)
	for n != nil {
		if i == 0 {
			return n.value, true
		}
		i--
		n = n.next
	}
	return nil, false
}
