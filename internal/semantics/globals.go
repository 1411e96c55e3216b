package semantics

import gl "github.com/pikelet-go/pikelet/internal/globals"

// Globals is the global environment type the semantics operations take.
// Aliased locally so call sites in this package read as the spec's
// `globals` parameter rather than an import-qualified name everywhere.
type Globals = *gl.Globals
