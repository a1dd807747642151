// Package descriptor defines the structural description of a type that
// every capability generator consumes, together with its validation and a
// YAML front end.
//
// A Descriptor is owned by the caller and read-only to generators.
//
// # Schema Overview
//
// A descriptor file has the following structure:
//
//	version: "1"
//	runtime: "::gc"          # path prefix for the capability traits
//	marker_suffix: Class     # marker type name = type name + suffix
//	strict_names: false      # reserved-name collisions fail instead of renaming
//	trace_leading: false     # trace bound on the first type parameter too
//	types:
//	  - name: Node
//	    kind: enum           # struct (default) or enum
//	    visibility: pub
//	    scopes: [a]          # a leading ' is accepted and stripped
//	    types: ["C", "T: Clone"]
//	    where: ["T: 'static"]
//	    derive: [rootable, trace]
//	    variants:
//	      - name: Leaf
//	        style: tuple
//	        fields: ["T"]
//	      - name: Branch
//	        fields:
//	          - "left: Gc<'a, Node<'a, C, T>>"
//	          - {name: right, type: "Gc<'a, Node<'a, C, T>>"}
//
// Structs list their fields directly under the type:
//
//	  - name: Point
//	    fields: ["x: f64", "y: f64"]
//
// A field string is "name: Type" for named fields or just "Type" for tuple
// fields. The separating colon is the first single colon outside angle
// brackets and parentheses, so paths such as std::rc::Rc<T> stay intact.
package descriptor
