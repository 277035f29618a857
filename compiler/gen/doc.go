// Package gen generates the tuple package: fixed-arity tuples with one
// typed accessor per (arity, position) pair.
//
// # Architecture
//
// The generation pipeline follows this flow:
//
//	tuplegen.yaml (load.File)
//	        ↓
//	   Config (functional options)
//	        ↓
//	   Plan (markers + derived artifacts)
//	        ↓
//	   JenniferGenerator (one task per file, rendered in parallel)
//	        ↓
//	   Generated code (tuple/) + manifest
//
// # Key Types
//
//   - Marker: position marker identity IndexI, shared by every arity
//   - Shape: ordered list of source type parameters of a derived tuple
//   - Artifact: the accessor for one (arity, position) pair with its
//     Pop remainder and SplitAt halves
//   - Plan: every artifact for arities 1..MaxArity
//   - Record: a named tuple with by-type accessors
//
// Derivation is purely structural. For position i of arity s the
// remainder is every position but i in order, the left half is 0..i and
// the right half is i+1..s-1. Derive never fails inside a plan, and a
// request outside it returns a *RangeError.
//
// # Error Handling
//
// The package uses structured error types:
//
//   - ConfigError: configuration errors
//   - RangeError: arity or position outside the generated set
//   - AmbiguityError: element type shared by several record positions
//   - RecordError: record declaration errors
//   - GenerationError: rendering and writing errors
//   - DriftError: generated files out of date
//
// Each type matches a sentinel with errors.Is:
//
//	if errors.Is(err, gen.ErrOutOfRange) {
//	    // raise max_arity
//	}
//
// # Configuration
//
//	cfg, err := gen.NewConfig(
//	    gen.WithMaxArity(8),
//	    gen.WithTarget("./tuple"),
//	    gen.WithPackage("github.com/org/project/tuple"),
//	)
//	metrics, err := gen.Generate(ctx, cfg)
//
// # Generated Output
//
//	{target}/
//	├── index.go        // Index0..Index(N-1) and the Index constraint
//	├── tuple0.go       // the empty tuple
//	├── tuple{s}.go     // Tuple{s}, New{s} and Tuple{s}At0..At{s-1}
//	├── protocol.go     // the Position interface
//	├── records.go      // named tuples, unless written elsewhere
//	└── .tuplegen.msgpack
package gen
