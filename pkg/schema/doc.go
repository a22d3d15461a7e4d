// Package schema provides the node algebra for describing binary
// layouts as composable trees.
//
// A schema node describes the byte-level structure of one piece of a
// format and drives the codec in both directions: Encode turns an
// in-memory value into its wire bytes, Decode turns bytes back into the
// value plus the number of bytes consumed. Decode followed by Encode is
// an identity over well-formed inputs.
//
// The node kinds are: Primitive (one wire type from pkg/codec), Record
// (named fields in wire order), Tuple (positional fields), Array (one
// repeated element schema), HeadArray and HeadPrimitive (length-prefixed
// forms), and Enum/EnumEntry (byte-literal tags with an optional
// default).
//
// Building a layout reads like the format documentation:
//
//	player := schema.MustRecord("player",
//	    schema.MustPrimitive("name", "cstr"),
//	    schema.MustPrimitive("health", "u1"),
//	    schema.MustHeadArray("inventory", "u1", schema.MustRecord("item",
//	        schema.MustPrimitive("id", "u2l"),
//	        schema.MustPrimitive("count", "u1"),
//	    )),
//	)
//
//	wire, err := player.Encode(value)
//	value, bytesize, err := player.Decode(wire, 0)
//
// Composite decoding is a left-to-right fold over children. A parent may
// inspect the partial result between child decodes and reconfigure a
// not-yet-visited child's args — the mechanism by which a decoded length
// field sizes a later bytes field. Clients reach this either through the
// child-window arguments of Record and Tuple (decode a prefix, mutate,
// decode the rest) or through the PreChild/PostChild and
// PreElem/PostElem hooks, whose no-op defaults give the pure algebra.
//
// Nodes are not safe for concurrent use: args and the value cache are
// per-node mutable state. Share a tree across goroutines only with
// external synchronization.
package schema
