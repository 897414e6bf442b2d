// Package extract pulls representative dominant colors out of raster images
// using median-cut quantization.
//
// The algorithm samples the pixel buffer at a fixed stride, drops pixels
// below an alpha visibility threshold, and then repeatedly splits the most
// populated bucket of samples along its widest RGB channel until the
// requested color count is reached. Each final bucket is reduced to the
// rounded mean of its members.
//
// This is a best-effort heuristic, not exact quantization: it guarantees a
// deterministic, reproducible split for a given buffer and options, not
// perceptually optimal clusters. Degenerate inputs never produce errors -
// an all-transparent buffer yields an empty result, and a solid-color image
// yields a single color regardless of how many were requested. Callers must
// check the length of the result rather than assume the requested count.
//
// All functions are pure: there is no shared state, so extractions can run
// concurrently on different images without coordination.
package extract
