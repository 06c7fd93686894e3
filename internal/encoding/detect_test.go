package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/traditionalchinese"

	"github.com/MrJamesThe3rd/homebill/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	input := "日期,金額,說明\n2024-03-05,1200,晚餐\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("日期,金額,說明\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "日期,金額,說明\n", string(got))
}

func TestNewUTF8Reader_Big5(t *testing.T) {
	// Big5-encoded header, the legacy format Taiwanese card exports use.
	want := "日期,金額,說明\n消費明細\n"

	big5, err := traditionalchinese.Big5.NewEncoder().Bytes([]byte(want))
	require.NoError(t, err)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(big5))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}
