package preview

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const sniffSampleSize = 4096

// Extensions that are never worth sniffing.
var binaryExtensions = map[string]struct{}{
	".7z": {}, ".a": {}, ".bin": {}, ".bmp": {}, ".bz2": {}, ".class": {},
	".dll": {}, ".dylib": {}, ".exe": {}, ".gif": {}, ".gz": {}, ".ico": {},
	".iso": {}, ".jar": {}, ".jpeg": {}, ".jpg": {}, ".mkv": {}, ".mov": {},
	".mp3": {}, ".mp4": {}, ".o": {}, ".pdf": {}, ".png": {}, ".so": {},
	".tar": {}, ".tgz": {}, ".ttf": {}, ".wasm": {}, ".webp": {}, ".woff": {},
	".woff2": {}, ".xz": {}, ".zip": {},
}

type bom int

const (
	bomNone bom = iota
	bomUTF8
	bomUTF16LE
	bomUTF16BE
)

// readText reads at most limit bytes of path and returns them as UTF-8 text.
// ok is false when the file looks binary.
func readText(path string, limit int64) (text string, ok bool, err error) {
	if _, binary := binaryExtensions[strings.ToLower(filepath.Ext(path))]; binary {
		return "", false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer func() {
		_ = f.Close()
	}()

	content, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return "", false, err
	}
	if !looksLikeText(content) {
		return "", false, nil
	}
	return decodeText(content), true, nil
}

func looksLikeText(content []byte) bool {
	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if len(sample) == 0 || detectBOM(sample) != bomNone {
		return true
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	// Latin-1 and friends: accept when control bytes stay rare.
	control := 0
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != 0x1b {
			control++
		}
	}
	return control*100/len(sample) < 30
}

func detectBOM(sample []byte) bom {
	switch {
	case bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}):
		return bomUTF8
	case bytes.HasPrefix(sample, []byte{0xFF, 0xFE}):
		return bomUTF16LE
	case bytes.HasPrefix(sample, []byte{0xFE, 0xFF}):
		return bomUTF16BE
	}
	return bomNone
}

func decodeText(content []byte) string {
	var out []byte
	switch detectBOM(content) {
	case bomUTF8:
		out = content[3:]
	case bomUTF16LE:
		out = decodeUTF16(content, unicode.LittleEndian)
	case bomUTF16BE:
		out = decodeUTF16(content, unicode.BigEndian)
	default:
		out = content
	}
	return strings.ToValidUTF8(string(out), "�")
}

func decodeUTF16(content []byte, endian unicode.Endianness) []byte {
	decoded, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return content
	}
	return decoded
}
