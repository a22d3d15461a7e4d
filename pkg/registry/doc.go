// Package registry maps type names to schema node constructors and
// rebuilds live schema trees from plain descriptions (reification).
//
// The builtin kinds are registered by an init-time function table;
// primitive wire types dispatch dynamically, so a description's type
// field can name "u4b" directly. Format extensions register their own
// kinds with Register, usually from their package's init.
//
// A Description is the schema-as-data form. It round-trips through
// YAML, JSON and deterministic CBOR, which is how a schema travels
// between processes:
//
//	desc, err := registry.ParseYAML(data)
//	root, err := registry.Make(desc)
//	value, n, err := root.Decode(buf, 0)
//
// The registry is process-wide. All registration happens during
// package initialization; afterwards it is effectively read-only and
// safe for concurrent lookups.
package registry
