package artifact

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/wippyai/jit-dispatch/artifact/internal/binary"
	"github.com/wippyai/jit-dispatch/errors"
	"github.com/wippyai/jit-dispatch/features"
	"github.com/wippyai/jit-dispatch/target"
)

const (
	// Magic identifies an embedded target-list blob ("JTGT", little
	// endian).
	Magic uint32 = 0x5447544A

	// FormatVersion is the blob layout version. Readers reject other
	// versions outright; width differences within a version are
	// handled by the word-count field.
	FormatVersion uint32 = 1
)

// maxTargets bounds the descriptor count a blob may claim, protecting
// the decoder from corrupt headers.
const maxTargets = 1024

// Encode serializes an ordered target list for embedding in a compiled
// artifact. Index order is preserved; index 0 is the primary target.
func Encode(targets []target.Target) []byte {
	w := binary.NewWriter()
	w.WriteU32LE(Magic)
	w.WriteU32(FormatVersion)
	w.WriteU32(uint32(features.Words))
	w.WriteU32(uint32(len(targets)))

	for _, t := range targets {
		w.WriteName(t.Name)
		for i := 0; i < features.Words; i++ {
			w.WriteU64(t.Features[i])
		}
		w.WriteU32(uint32(len(t.Ext)))
		for _, e := range t.Ext {
			w.WriteName(e)
		}
		w.WriteU32(t.Flags)
	}
	return w.Bytes()
}

// Decode parses a blob produced by Encode, possibly by a toolchain
// with a different catalog width. Feature words beyond this reader's
// width are dropped with a diagnostic; absent high words are zero.
func Decode(data []byte) ([]target.Target, error) {
	r := binary.NewReader(bytes.NewReader(data))

	magic, err := r.ReadU32LE()
	if err != nil {
		return nil, errors.InvalidData("truncated header", r.WrapError("magic", err))
	}
	if magic != Magic {
		return nil, errors.InvalidData(fmt.Sprintf("bad magic 0x%08x", magic), nil)
	}

	version, err := r.ReadU32()
	if err != nil {
		return nil, errors.InvalidData("format version", r.WrapError("version", err))
	}
	if version != FormatVersion {
		return nil, errors.InvalidData(
			fmt.Sprintf("unsupported format version %d (reader supports %d)", version, FormatVersion), nil)
	}

	words, err := r.ReadU32()
	if err != nil {
		return nil, errors.InvalidData("feature word count", r.WrapError("words", err))
	}
	count, err := r.ReadU32()
	if err != nil {
		return nil, errors.InvalidData("target count", r.WrapError("count", err))
	}
	if count > maxTargets {
		return nil, errors.InvalidData(fmt.Sprintf("implausible target count %d", count), nil)
	}

	if words > features.Words {
		Logger().Warn("artifact catalog wider than reader; dropping high feature words",
			zap.Uint32("stored_words", words),
			zap.Int("reader_words", features.Words))
	}

	targets := make([]target.Target, 0, count)
	for i := uint32(0); i < count; i++ {
		var t target.Target

		t.Name, err = r.ReadName()
		if err != nil {
			return nil, errors.InvalidData(fmt.Sprintf("target %d name", i), r.WrapError("name", err))
		}

		for wi := uint32(0); wi < words; wi++ {
			word, err := r.ReadU64()
			if err != nil {
				return nil, errors.InvalidData(fmt.Sprintf("target %d feature word %d", i, wi), r.WrapError("features", err))
			}
			if wi < features.Words {
				t.Features[wi] = word
			} else if word != 0 {
				Logger().Warn("dropped nonzero feature word",
					zap.String("target", t.Name),
					zap.Uint32("word", wi))
			}
		}

		extCount, err := r.ReadU32()
		if err != nil {
			return nil, errors.InvalidData(fmt.Sprintf("target %d ext count", i), r.WrapError("ext count", err))
		}
		for ei := uint32(0); ei < extCount; ei++ {
			ext, err := r.ReadName()
			if err != nil {
				return nil, errors.InvalidData(fmt.Sprintf("target %d ext token %d", i, ei), r.WrapError("ext", err))
			}
			t.Ext = append(t.Ext, ext)
		}

		t.Flags, err = r.ReadU32()
		if err != nil {
			return nil, errors.InvalidData(fmt.Sprintf("target %d flags", i), r.WrapError("flags", err))
		}

		targets = append(targets, t)
	}
	return targets, nil
}
