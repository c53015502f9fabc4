package utf8converter

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

var errUnknownCodec = errors.New("no codec for encoding")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeStrict decodes data from label to UTF-8. Unlike the x/text decoders,
// which substitute U+FFFD for invalid input, it treats any introduced
// replacement character as a decode failure.
func decodeStrict(label string, data []byte) ([]byte, error) {
	enc := lookupEncoding(label)
	if enc == nil {
		return nil, fmt.Errorf("%w %q", errUnknownCodec, label)
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	// Decoders built with UseBOM strip the mark; the UTF-8 one keeps it.
	decoded = bytes.TrimPrefix(decoded, utf8BOM)

	if i := bytes.IndexRune(decoded, utf8.RuneError); i >= 0 && !genuineReplacementChars(enc, data) {
		return nil, fmt.Errorf("invalid byte sequence near decoded offset %d", i)
	}
	return decoded, nil
}

// genuineReplacementChars reports whether a U+FFFD in the output was already
// present in valid UTF-8 input rather than introduced by the decoder.
func genuineReplacementChars(enc encoding.Encoding, data []byte) bool {
	if enc != unicode.UTF8 && enc != unicode.UTF8BOM {
		return false
	}
	return utf8.Valid(data)
}

// normalizeLabel lowercases a charset name and drops '-' and '_' so that
// "Windows-1256", "windows_1256" and "WINDOWS1256" compare equal.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(strings.TrimSpace(label), "-", ""), "_", ""))
}

// lookupEncoding maps charset names to Go encoding implementations.
// Names chardet reports are matched directly; anything else goes through the
// WHATWG and IANA indexes.
func lookupEncoding(label string) encoding.Encoding {
	switch normalizeLabel(label) {
	case "utf8", "ascii", "usascii":
		// ASCII is a subset of UTF-8
		return unicode.UTF8
	case "utf8bom", "utf8sig":
		return unicode.UTF8BOM
	case "utf16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	case "utf16be", "utf16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "utf32le":
		return utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)
	case "utf32be", "utf32":
		return utf32.UTF32(utf32.BigEndian, utf32.UseBOM)
	case "iso88591", "latin1":
		return charmap.ISO8859_1
	case "iso88592":
		return charmap.ISO8859_2
	case "iso88595":
		return charmap.ISO8859_5
	case "iso88596":
		return charmap.ISO8859_6
	case "iso88597":
		return charmap.ISO8859_7
	case "iso88598", "iso88598i":
		return charmap.ISO8859_8
	case "iso88599":
		return charmap.ISO8859_9
	case "iso885915":
		return charmap.ISO8859_15
	case "windows1250", "cp1250":
		return charmap.Windows1250
	case "windows1251", "cp1251":
		return charmap.Windows1251
	case "windows1252", "cp1252":
		return charmap.Windows1252
	case "windows1253", "cp1253":
		return charmap.Windows1253
	case "windows1254", "cp1254":
		return charmap.Windows1254
	case "windows1255", "cp1255":
		return charmap.Windows1255
	case "windows1256", "cp1256":
		return charmap.Windows1256
	case "koi8r":
		return charmap.KOI8R
	case "shiftjis", "sjis", "cp932", "windows31j":
		return japanese.ShiftJIS
	case "eucjp":
		return japanese.EUCJP
	case "iso2022jp":
		return japanese.ISO2022JP
	case "euckr", "cp949", "uhc":
		return korean.EUCKR
	case "gb2312", "gbk", "cp936":
		return simplifiedchinese.GBK
	case "gb18030":
		return simplifiedchinese.GB18030
	case "big5", "cp950":
		return traditionalchinese.Big5
	}

	if enc, _ := charset.Lookup(label); enc != nil {
		return enc
	}
	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc
	}
	return nil
}
