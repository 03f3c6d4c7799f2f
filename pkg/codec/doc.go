// Package codec provides ready-made leaf transformers for common string and
// document conversions: Int, IntBase, Float, Bool, Time, UUID, YAML, plus the
// one-way TrimSpace and NonEmpty.
//
// All reversible codecs are built with vt.NewReversible and fail with *Error,
// whose Err field holds the underlying cause.
package codec
