// Package persistence implements the self-describing snapshot container used
// to serialize finalized indexes.
//
// A container consists of a fixed header (magic, format version, compression
// tag, payload checksum), the name of the codec that encoded the payload, and
// the payload itself. Readers validate the header, verify the checksum,
// decompress, and decode with the codec named in the header, so a container
// written with any supported codec/compression combination can be opened
// without out-of-band knowledge.
package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/ngramidx/codec"
)

// Options configures snapshot writing.
type Options struct {
	// Codec encodes the payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the payload compression. Defaults to
	// CompressionZstd.
	Compression Compression
}

// DefaultOptions returns the default write options.
func DefaultOptions() Options {
	return Options{
		Codec:       codec.Default,
		Compression: CompressionZstd,
	}
}

// Write encodes v and writes a snapshot container to w.
func Write(w io.Writer, v any, optFns ...func(o *Options)) error {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	name := opts.Codec.Name()
	if len(name) == 0 || len(name) > maxCodecNameLen {
		return fmt.Errorf("persistence: invalid codec name %q", name)
	}
	if _, ok := codec.ByName(name); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	payload, err := opts.Codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("persistence: encode payload: %w", err)
	}

	payload, err = compress(payload, opts.Compression)
	if err != nil {
		return err
	}

	header := fileHeader{
		Magic:        MagicNumber,
		Version:      FormatVersion,
		Compression:  uint8(opts.Compression),
		CodecNameLen: uint8(len(name)),
		PayloadLen:   uint64(len(payload)),
		Checksum:     Checksum(payload),
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("persistence: write header: %w", err)
	}
	if _, err := io.WriteString(w, name); err != nil {
		return fmt.Errorf("persistence: write codec name: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("persistence: write payload: %w", err)
	}

	return nil
}

// Read reads a snapshot container from r and decodes its payload into v.
func Read(r io.Reader, v any) error {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("persistence: read header: %w", err)
	}

	if header.Magic != MagicNumber {
		return ErrInvalidMagic
	}
	if header.Version != FormatVersion {
		return fmt.Errorf("%w: %d", ErrInvalidVersion, header.Version)
	}

	name := make([]byte, header.CodecNameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return fmt.Errorf("persistence: read codec name: %w", err)
	}

	c, ok := codec.ByName(string(name))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}

	payload := make([]byte, header.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fmt.Errorf("persistence: read payload: %w", err)
	}

	if actual := Checksum(payload); actual != header.Checksum {
		return &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	payload, err := decompress(payload, Compression(header.Compression))
	if err != nil {
		return err
	}

	if err := c.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("persistence: decode payload: %w", err)
	}

	return nil
}

func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("persistence: create zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil

	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("persistence: lz4 compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("persistence: lz4 flush: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil

	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("persistence: create zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("persistence: zstd decompress: %w", err)
		}
		return out, nil

	case CompressionLZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("persistence: lz4 decompress: %w", err)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, c)
	}
}
