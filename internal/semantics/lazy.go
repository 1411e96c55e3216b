package semantics

import (
	"sync"
	"sync/atomic"

	"github.com/pikelet-go/pikelet/internal/kernelerrors"
	"github.com/pikelet-go/pikelet/internal/terms"
)

// forceExecCount instruments how many times a LazyValue initializer has
// actually run (as opposed to how many times Force was called, which also
// counts cache hits). It lets a caller confirm that glued-value short-
// circuiting in IsEqual/IsSubtype really does avoid forcing thunks (spec
// §8 scenario 4: "observable by instrumenting force counts").
var forceExecCount int64

// ForceExecCount returns the number of LazyValue initializers executed so
// far in this process.
func ForceExecCount() int64 { return atomic.LoadInt64(&forceExecCount) }

// ResetForceExecCount zeroes the force-execution counter; intended for
// test setup only.
func ResetForceExecCount() { atomic.StoreInt64(&forceExecCount, 0) }

// lazyInit is the defunctionalized initializer for a LazyValue: either
// "evaluate this term in this environment at this offset" or "apply this
// elimination to this other lazy value" (spec §3.3, §4.4).
type lazyInit interface {
	isLazyInit()
}

type evalTermInit struct {
	offset terms.UniverseOffset
	env    Env
	term   terms.Term
}

func (evalTermInit) isLazyInit() {}

type applyElimInit struct {
	inner *LazyValue
	elim  Elim
}

func (applyElimInit) isLazyInit() {}

// LazyValue is a single-assignment memoizing cell (spec §4.4). Forcing is
// guarded by a mutex: the kernel itself is single-threaded (spec §5), but
// the guard gives any client that shares a LazyValue across goroutines the
// happens-before guarantee between force and observe that spec §5 asks
// implementations to provide if they allow cross-thread use.
type LazyValue struct {
	mu     sync.Mutex
	init   lazyInit
	taken  bool
	cached Value
}

// NewLazyValue eagerly wraps an already-computed value.
func NewLazyValue(v Value) *LazyValue {
	return &LazyValue{cached: v, taken: true}
}

// NewLazyEvalTerm defers evaluation of term under env at offset.
func NewLazyEvalTerm(offset terms.UniverseOffset, env Env, term terms.Term) *LazyValue {
	return &LazyValue{init: evalTermInit{offset: offset, env: env, term: term}}
}

// NewLazyApplyElim defers applying elim to the value inner eventually
// forces to.
func NewLazyApplyElim(inner *LazyValue, elim Elim) *LazyValue {
	return &LazyValue{init: applyElimInit{inner: inner, elim: elim}}
}

// Forced reports whether this cell has already computed and cached its
// value. Exposed for diagnostics and for tests that verify glued values
// are compared without being forced (spec §8 scenario 4).
func (lz *LazyValue) Forced() bool {
	lz.mu.Lock()
	defer lz.mu.Unlock()
	return lz.cached != nil
}

// Force runs the initializer on first call and returns the cached result
// on every subsequent call. A LazyValue shared across two spines (e.g. the
// thunk backing an Unstuck value and the mirrored thunk its
// ApplyElim-wrapped sibling holds) shares one memoized result.
func (lz *LazyValue) Force(g Globals) Value {
	lz.mu.Lock()
	if lz.cached != nil {
		v := lz.cached
		lz.mu.Unlock()
		return v
	}
	if lz.taken {
		lz.mu.Unlock()
		panic(&kernelerrors.KernelFault{
			Code:   kernelerrors.KRN005,
			Where:  "LazyValue.Force",
			Detail: "forced again after the initializer was taken but produced no cached value (re-entrant force across a panic)",
		})
	}
	init := lz.init
	lz.init = nil
	lz.taken = true
	lz.mu.Unlock()

	atomic.AddInt64(&forceExecCount, 1)
	v := runLazyInit(g, init)

	lz.mu.Lock()
	lz.cached = v
	lz.mu.Unlock()
	return v
}

func runLazyInit(g Globals, init lazyInit) Value {
	switch i := init.(type) {
	case evalTermInit:
		return EvalTerm(g, i.offset, i.env, i.term)
	case applyElimInit:
		inner := i.inner.Force(g)
		switch i.elim.Kind {
		case ElimFunction:
			return ApplyFunctionElim(g, inner, i.elim.Argument)
		case ElimRecord:
			return ApplyRecordElim(g, inner, i.elim.Label)
		default:
			return &ErrorValue{}
		}
	default:
		return &ErrorValue{}
	}
}
