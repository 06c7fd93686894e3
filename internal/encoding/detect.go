package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decoders maps chardet charset names to the decoders bank statement exports
// actually show up in. Taiwanese issuers still ship Big5 CSVs; mainland ones
// ship GB18030/GBK.
var decoders = map[string]encoding.Encoding{
	"Big5":         traditionalchinese.Big5,
	"GB18030":      simplifiedchinese.GB18030,
	"GB-18030":     simplifiedchinese.GB18030,
	"GBK":          simplifiedchinese.GBK,
	"ISO-8859-1":   charmap.Windows1252,
	"windows-1252": charmap.Windows1252,
}

// NewUTF8Reader detects the encoding of a statement export and returns a
// reader that decodes it to UTF-8.
//
// Detection order:
//  1. BOM (UTF-8 BOM stripped; UTF-16 LE/BE decoded)
//  2. Content that is already valid UTF-8 passes through
//  3. Heuristic detection via chardet against the known decoder set
//  4. Fallback to Big5, the most common legacy export encoding
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	if bytes.HasPrefix(buf, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return br, nil
	}

	if bytes.HasPrefix(buf, bomUTF16LE) {
		return transform.NewReader(br, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if bytes.HasPrefix(buf, bomUTF16BE) {
		return transform.NewReader(br, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()), nil
	}

	if utf8.Valid(buf) {
		return br, nil
	}

	detector := chardet.NewTextDetector()

	if result, detectErr := detector.DetectBest(buf); detectErr == nil {
		if result.Charset == "UTF-8" {
			return br, nil
		}

		if dec, ok := decoders[result.Charset]; ok {
			return transform.NewReader(br, dec.NewDecoder()), nil
		}
	}

	return transform.NewReader(br, traditionalchinese.Big5.NewDecoder()), nil
}
