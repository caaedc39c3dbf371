package persistence

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ngramidx/codec"
)

type payload struct {
	N       int               `json:"n" msgpack:"n"`
	Grams   map[string]uint32 `json:"grams" msgpack:"grams"`
	Ordered []uint32          `json:"ordered" msgpack:"ordered"`
}

func samplePayload() payload {
	return payload{
		N:       3,
		Grams:   map[string]uint32{"§§s": 0, "sch": 1},
		Ordered: []uint32{0, 1, 2},
	}
}

func TestWriteRead(t *testing.T) {
	compressions := map[string]Compression{
		"None": CompressionNone,
		"Zstd": CompressionZstd,
		"LZ4":  CompressionLZ4,
	}
	codecs := map[string]codec.Codec{
		"JSON":    codec.JSON{},
		"Msgpack": codec.Msgpack{},
	}

	for cname, comp := range compressions {
		for kname, c := range codecs {
			t.Run(cname+"/"+kname, func(t *testing.T) {
				var buf bytes.Buffer
				err := Write(&buf, samplePayload(), func(o *Options) {
					o.Compression = comp
					o.Codec = c
				})
				require.NoError(t, err)

				var out payload
				require.NoError(t, Read(&buf, &out))
				assert.Equal(t, samplePayload(), out)
			})
		}
	}
}

func TestReadValidation(t *testing.T) {
	write := func(t *testing.T) []byte {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, samplePayload()))
		return buf.Bytes()
	}

	t.Run("InvalidMagic", func(t *testing.T) {
		data := write(t)
		data[0] ^= 0xFF

		var out payload
		err := Read(bytes.NewReader(data), &out)
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		data := write(t)
		data[4] = 99

		var out payload
		err := Read(bytes.NewReader(data), &out)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("CorruptPayload", func(t *testing.T) {
		data := write(t)
		data[len(data)-1] ^= 0xFF

		var out payload
		err := Read(bytes.NewReader(data), &out)
		require.Error(t, err)
		assert.True(t, IsChecksumMismatch(err))
	})

	t.Run("Truncated", func(t *testing.T) {
		data := write(t)

		var out payload
		err := Read(bytes.NewReader(data[:len(data)-4]), &out)
		assert.Error(t, err)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		var out payload
		assert.Error(t, Read(bytes.NewReader(nil), &out))
	})
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("hello"))
	b := Checksum([]byte("hellp"))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Checksum([]byte("hello")))
}
