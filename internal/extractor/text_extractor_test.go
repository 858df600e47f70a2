package extractor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTextExtractorPages(t *testing.T) {
	x := NewPlainTextExtractor()

	pages, err := x.ExtractPages(context.Background(), strings.NewReader("page one\fpage two"), "test.txt")
	require.NoError(t, err)
	require.Len(t, pages, 2, "换页符应视为页边界")
	assert.Equal(t, "page one", pages[0])
	assert.Equal(t, "page two", pages[1])
}

func TestPlainTextExtractorSinglePage(t *testing.T) {
	x := NewPlainTextExtractor()

	pages, err := x.ExtractPages(context.Background(), strings.NewReader("no page breaks"), "test.txt")
	require.NoError(t, err)
	require.Len(t, pages, 1)
}

func TestPlainTextExtractorInvalidUTF8(t *testing.T) {
	x := NewPlainTextExtractor()

	_, err := x.ExtractPages(context.Background(), strings.NewReader(string([]byte{0xff, 0xfe})), "bad.txt")
	assert.Error(t, err, "不可解码的输入应报错")
}
