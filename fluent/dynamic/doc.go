// Package dynamic resolves members of loosely-shaped subjects by name.
//
// Resolve walks a path of member names through structs, maps, slices and
// zero-argument methods using reflection. When a member cannot be reached
// (missing, unexported, behind a nil, out of range) the result is Absent rather
// than an error: Absent renders as null in diagnostics and counts as null for
// null checks, but it is never equal or identical to a literal nil.
//
//	v := dynamic.Resolve(cmd, "Subject.Name")
//	if a, ok := v.Absent(); ok {
//	    fmt.Println(a.Path, a.Cause)
//	}
package dynamic
