package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// NewUTF8Reader detects the encoding of the input and returns a reader that
// decodes the content to NFC-normalized UTF-8. OCR dumps and exported text
// files arrive in whatever encoding the scanner or bank picked; keyword
// matching downstream needs composed accents ("emisión", not "emisio´n").
//
// Detection order:
//  1. Check for BOM (UTF-8 BOM is stripped; UTF-16 LE/BE is decoded)
//  2. Validate if the content is valid UTF-8
//  3. Heuristic detection via chardet
//  4. Fallback to Windows-1252
func NewUTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	// Peek enough bytes for BOM detection and charset heuristics.
	buf, err := br.Peek(4096)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("peek: %w", err)
	}

	// 1. Check for BOM.
	if bytes.HasPrefix(buf, bomUTF8) {
		_, _ = br.Discard(len(bomUTF8))
		return transform.NewReader(br, norm.NFC), nil
	}

	if bytes.HasPrefix(buf, bomUTF16LE) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, transform.Chain(decoder, norm.NFC)), nil
	}

	if bytes.HasPrefix(buf, bomUTF16BE) {
		decoder := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder()
		return transform.NewReader(br, transform.Chain(decoder, norm.NFC)), nil
	}

	// 2. If the content is valid UTF-8, only normalization remains.
	if utf8.Valid(buf) {
		return transform.NewReader(br, norm.NFC), nil
	}

	// 3. Heuristic detection via chardet.
	detector := chardet.NewTextDetector()

	result, detectErr := detector.DetectBest(buf)
	if detectErr == nil {
		switch result.Charset {
		case "UTF-8":
			return transform.NewReader(br, norm.NFC), nil
		case "ISO-8859-1", "windows-1252":
			return transform.NewReader(br, transform.Chain(charmap.Windows1252.NewDecoder(), norm.NFC)), nil
		case "ISO-8859-15":
			return transform.NewReader(br, transform.Chain(charmap.ISO8859_15.NewDecoder(), norm.NFC)), nil
		}
	}

	// 4. Fallback to Windows-1252.
	return transform.NewReader(br, transform.Chain(charmap.Windows1252.NewDecoder(), norm.NFC)), nil
}

// ReadAllText decodes everything from r into an NFC-normalized UTF-8 string.
func ReadAllText(r io.Reader) (string, error) {
	utf8r, err := NewUTF8Reader(r)
	if err != nil {
		return "", err
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}

	return string(raw), nil
}

// Truncate cuts s to at most n bytes without splitting a rune. Document text
// is attacker-supplied; callers cap it before handing it to the regex
// extractors.
func Truncate(s string, n int) string {
	if n < 0 || len(s) <= n {
		return s
	}

	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	return s[:n]
}
