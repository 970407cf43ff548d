// Package layer exposes a compiled circuit to a host learning framework.
//
// A Layer is built once from a configuration; the host reads
// RequiredParameterCount to allocate its trainable tensor and then calls
// Forward for every sample:
//
//	ly, err := layer.FromSpec(spec, 0, statevector.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	weights := ly.InitParameters(42)
//	out, err := ly.Forward(ctx, inputs, weights)
//
// Construction errors (missing blocks, bad shapes, unknown tokens, bad
// targets, bad encoding) surface from New/FromSpec. Forward fails on input
// vectors that do not fit the encoding and on parameter vectors whose length
// differs from RequiredParameterCount; executor errors pass through as-is.
//
// ForwardBatch evaluates many samples concurrently against one parameter
// vector.
package layer
