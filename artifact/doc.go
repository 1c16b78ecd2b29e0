// Package artifact encodes and decodes the target list embedded in
// compiled artifacts.
//
// The blob is self-describing: a magic number, a format version and a
// feature word count precede the descriptors, so a reader built
// against a smaller catalog degrades gracefully (extra feature words
// are dropped with a diagnostic, missing ones read as zero) instead of
// crashing. Decode(Encode(list)) reproduces the list exactly.
package artifact
