package fixedbytes_test

import (
	"database/sql"
	"database/sql/driver"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	db_dialect "github.com/nivschuman/FixedBytesSQL/internal/database/dialect"
	"github.com/nivschuman/FixedBytesSQL/internal/fixedbytes"
)

var (
	_ driver.Valuer = fixedbytes.Address{}
	_ sql.Scanner   = (*fixedbytes.Address)(nil)
)

var testAddress = fixedbytes.MustFromHex[fixedbytes.W20]("0x742d35Cc6635C0532925a3b8D42cC72b5c2A9A1d")

func TestValue_IsCanonicalHex(t *testing.T) {
	value, err := testAddress.Value()
	require.NoError(t, err)
	assert.Equal(t, "0x742d35cc6635c0532925a3b8d42cc72b5c2a9a1d", value)
}

func TestScan(t *testing.T) {
	testCases := []struct {
		name string
		src  any
	}{
		{name: "hex string", src: "0x742d35cc6635c0532925a3b8d42cc72b5c2a9a1d"},
		{name: "upper case hex string", src: "0X742D35CC6635C0532925A3B8D42CC72B5C2A9A1D"},
		{name: "hex string without prefix", src: "742d35cc6635c0532925a3b8d42cc72b5c2a9a1d"},
		{name: "hex bytes", src: []byte("0x742D35Cc6635C0532925a3b8D42cC72b5c2A9A1d")},
		{name: "raw bytes", src: testAddress.Bytes()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var scanned fixedbytes.Address
			require.NoError(t, scanned.Scan(tc.src))
			assert.Equal(t, testAddress, scanned)
		})
	}
}

func TestScan_Errors(t *testing.T) {
	var scanned fixedbytes.Address

	require.ErrorIs(t, scanned.Scan(nil), fixedbytes.ErrNullValue)
	require.ErrorIs(t, scanned.Scan(int64(1)), fixedbytes.ErrUnsupportedSource)
	require.ErrorIs(t, scanned.Scan(make([]byte, 19)), fixedbytes.ErrLengthMismatch)
	require.ErrorIs(t, scanned.Scan(make([]byte, 21)), fixedbytes.ErrLengthMismatch)
	require.ErrorIs(t, scanned.Scan("0x1234"), fixedbytes.ErrInvalidHexLength)
	require.ErrorIs(t, scanned.Scan("0x"+strings.Repeat("zz", 20)), fixedbytes.ErrInvalidHexDigit)

	assert.True(t, scanned.IsZero(), "failed scans must leave the destination untouched")
}

func TestEncodeAs(t *testing.T) {
	text, err := testAddress.EncodeAs(db_dialect.TextHex)
	require.NoError(t, err)
	assert.Equal(t, "0x742d35cc6635c0532925a3b8d42cc72b5c2a9a1d", text)

	binary, err := testAddress.EncodeAs(db_dialect.NativeBinary)
	require.NoError(t, err)
	assert.Equal(t, testAddress.Bytes(), binary)

	_, err = testAddress.EncodeAs(db_dialect.Encoding(0))
	require.Error(t, err)
}

func TestDecodeAs(t *testing.T) {
	decoded, err := fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.TextHex, "0x742D35CC6635C0532925A3B8D42CC72B5C2A9A1D")
	require.NoError(t, err)
	assert.Equal(t, testAddress, decoded)

	decoded, err = fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.TextHex, []byte("0x742d35cc6635c0532925a3b8d42cc72b5c2a9a1d"))
	require.NoError(t, err)
	assert.Equal(t, testAddress, decoded)

	decoded, err = fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.NativeBinary, testAddress.Bytes())
	require.NoError(t, err)
	assert.Equal(t, testAddress, decoded)
}

func TestDecodeAs_Errors(t *testing.T) {
	_, err := fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.NativeBinary, append(testAddress.Bytes(), 0))
	require.ErrorIs(t, err, fixedbytes.ErrLengthMismatch)

	_, err = fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.NativeBinary, testAddress.Bytes()[:19])
	require.ErrorIs(t, err, fixedbytes.ErrLengthMismatch)

	// hex text deposited in a binary column is a caller error, not something to fix up
	_, err = fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.NativeBinary, []byte(testAddress.Hex()))
	require.ErrorIs(t, err, fixedbytes.ErrLengthMismatch)

	_, err = fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.NativeBinary, testAddress.Hex())
	require.ErrorIs(t, err, fixedbytes.ErrUnsupportedSource)

	_, err = fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.TextHex, testAddress.Bytes())
	require.ErrorIs(t, err, fixedbytes.ErrInvalidHexDigit)

	_, err = fixedbytes.DecodeAs[fixedbytes.W20](db_dialect.TextHex, nil)
	require.ErrorIs(t, err, fixedbytes.ErrNullValue)
}
