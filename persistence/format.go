package persistence

import "errors"

const (
	// MagicNumber identifies snapshot containers (ASCII: "NGX1").
	MagicNumber = 0x4E475831
	// FormatVersion is the current container format version.
	FormatVersion = 1

	// maxCodecNameLen bounds the codec name field in the header.
	maxCodecNameLen = 255
)

// Compression selects the payload compression of a snapshot container.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = iota
	// CompressionZstd compresses the payload with zstd.
	CompressionZstd
	// CompressionLZ4 compresses the payload as an lz4 frame.
	CompressionLZ4
)

var (
	ErrInvalidMagic       = errors.New("persistence: invalid magic number")
	ErrInvalidVersion     = errors.New("persistence: unsupported format version")
	ErrUnknownCodec       = errors.New("persistence: unknown codec")
	ErrUnknownCompression = errors.New("persistence: unknown compression")
)

// fileHeader is the fixed-size header at the start of every snapshot
// container. The codec name and the payload follow it.
type fileHeader struct {
	Magic        uint32
	Version      uint32
	Compression  uint8
	CodecNameLen uint8
	Reserved     [2]byte
	PayloadLen   uint64
	Checksum     uint32 // CRC32 (IEEE) of the stored (possibly compressed) payload
}
