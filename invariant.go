package hashcode

// invariantCode marks a computation as type-invariant. It forwards all
// byte runs to the wrapped Code unchanged; only the marker differs.
type invariantCode struct {
	Code
}

// TypeInvariant reports true; see the package-level TypeInvariant.
func (invariantCode) TypeInvariant() bool { return true }

// Invariant wraps c so that AppendValue routes types implementing
// InvariantHashable through their logical-value decomposition. Use it when
// digests must agree across different representations of equal values,
// at the cost of the representation shortcuts.
func Invariant(c Code) Code {
	return invariantCode{Code: c}
}

// TypeInvariant reports whether s demands type-invariant decomposition.
// Hashable implementations with representation-dependent fast paths should
// consult it (or implement InvariantHashable) before taking the shortcut.
func TypeInvariant(s Sink) bool {
	ti, ok := s.(interface{ TypeInvariant() bool })
	return ok && ti.TypeInvariant()
}
