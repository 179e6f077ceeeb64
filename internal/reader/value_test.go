package reader

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/internal/format"
)

func TestUint32(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint32
	}{
		{"little endian", []byte{0x05, 0x9d, 0x13, 0xa6}, 2786274309},
		{"zero", []byte{0, 0, 0, 0}, 0},
		{"all bits", []byte{0xff, 0xff, 0xff, 0xff}, 0xffffffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(append(tt.data, 0x01))
			got, err := r.Uint32()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, 4, r.Offset())
		})
	}
}

func TestUint32Truncated(t *testing.T) {
	for n := 0; n < format.Int32Size; n++ {
		r := New(make([]byte, n))
		_, err := r.Uint32()
		require.ErrorIs(t, err, format.ErrTruncated, "length %d", n)
		require.True(t, r.Done())
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    string
		wantOff int
	}{
		{"plain", "Anki\x00", "Anki", 5},
		{"empty", "\x00trailing", "", 1},
		{"quotes kept", "\"/usr/local/bin/foo.sh\"\x00", "\"/usr/local/bin/foo.sh\"", 24},
		{"utf8", "Café\x00", "Café", 6},
		{"invalid byte", "a\xffb\x00", "a�b", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New([]byte(tt.data))
			got, err := r.String()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantOff, r.Offset())
		})
	}
}

func TestStringTruncated(t *testing.T) {
	r := New([]byte("no terminator"))
	_, err := r.String()
	require.ErrorIs(t, err, format.ErrTruncated)
	require.True(t, r.Done())

	_, err = New(nil).String()
	require.ErrorIs(t, err, format.ErrTruncated)
}

func TestDecodeText(t *testing.T) {
	require.Equal(t, "", DecodeText(nil))
	require.Equal(t, "plain", DecodeText([]byte("plain")))
	require.Equal(t, "��", DecodeText([]byte{0xff, 0xfe}))
}
