/*
Package dsl provides a fluent Go API for programmatically constructing
schema trees.

It is sugar over pkg/schema's constructors: each call appends a child,
and Build compiles the accumulated children into the composite node,
reporting the first construction error. For layouts that travel as
data, use pkg/registry descriptions instead.

	player, err := dsl.Record("player").
	    Field("name", "cstr").
	    Field("health", "u1").
	    HeadArray("inventory", "u1", dsl.Record("item").
	        Field("id", "u2l").
	        Field("count", "u1"),
	    ).
	    Build()
*/
package dsl
