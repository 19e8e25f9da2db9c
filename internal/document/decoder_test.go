package document_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"plagcheck/internal/document"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newDecoder(t *testing.T, opts document.Options) *document.Decoder {
	t.Helper()
	d, err := document.NewDecoder(opts)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	return d
}

func TestDecodeFileUTF8(t *testing.T) {
	path := writeFile(t, "test.txt", []byte("  测试内容\n"))
	d := newDecoder(t, document.Options{})

	got, err := d.DecodeFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if got.Text != "测试内容" {
		t.Fatalf("Text = %q, want %q", got.Text, "测试内容")
	}
	if got.Encoding != "utf-8" {
		t.Fatalf("Encoding = %q, want utf-8", got.Encoding)
	}
}

func TestDecodeStripsBOM(t *testing.T) {
	d := newDecoder(t, document.Options{})
	got, err := d.Decode(append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello")...))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Text != "hello" {
		t.Fatalf("Text = %q, want hello", got.Text)
	}
}

func TestDecodeUTF16WithBOM(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	raw, err := enc.Bytes([]byte("今天天气很好"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	d := newDecoder(t, document.Options{})

	got, err := d.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Text != "今天天气很好" || got.Encoding != "utf-16le" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeDetectsGB18030(t *testing.T) {
	text := strings.Repeat("我们今天在学校里学习了中国的历史和文化，老师说这些知识对我们的生活很有帮助。", 8)
	raw, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	d := newDecoder(t, document.Options{})

	got, err := d.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Text != text {
		t.Fatalf("Text mismatch: encoding=%q", got.Encoding)
	}
	if got.Encoding != "gb18030" {
		t.Fatalf("Encoding = %q, want gb18030", got.Encoding)
	}
}

func TestDecodeFixedEncoding(t *testing.T) {
	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("抄袭检测"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	d := newDecoder(t, document.Options{Policy: document.PolicyFixed, FixedEncoding: "GBK"})

	got, err := d.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Text != "抄袭检测" || got.Encoding != "gbk" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeSampleCutsMultibyteRune(t *testing.T) {
	d := newDecoder(t, document.Options{SampleSize: 4})
	got, err := d.Decode([]byte("测试"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Text != "测试" || got.Encoding != "utf-8" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeFileInvalidByteAfterSample(t *testing.T) {
	path := writeFile(t, "late.txt", []byte("abcdef\xffgh"))
	d := newDecoder(t, document.Options{SampleSize: 4})

	_, err := d.DecodeFile(context.Background(), path)
	if !errors.Is(err, document.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestDecodeRejectsEncodedReplacementCharacter(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	raw, err := enc.Bytes([]byte("ab\uFFFDcd"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	d := newDecoder(t, document.Options{})

	if _, err := d.Decode(raw); err == nil {
		t.Fatal("expected U+FFFD in decoded text to be rejected")
	}
}

func TestDecodeEmpty(t *testing.T) {
	d := newDecoder(t, document.Options{})
	got, err := d.Decode([]byte(" \n\t "))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Text != "" {
		t.Fatalf("Text = %q, want empty", got.Text)
	}
}

func TestNewDecoderRejectsUnknownFixedEncoding(t *testing.T) {
	if _, err := document.NewDecoder(document.Options{Policy: document.PolicyFixed, FixedEncoding: "klingon-8"}); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
	if _, err := document.NewDecoder(document.Options{Policy: "guess"}); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestDecodeFileErrors(t *testing.T) {
	dir := t.TempDir()
	invalid := writeFile(t, "invalid.txt", []byte{'a', 0xFF, 0xFE, 'b'})
	fixed := newDecoder(t, document.Options{Policy: document.PolicyFixed})

	tests := []struct {
		name    string
		decoder *document.Decoder
		path    string
		kind    error
	}{
		{"missing", newDecoder(t, document.Options{}), filepath.Join(dir, "non_existing_file.txt"), document.ErrNotFound},
		{"directory", newDecoder(t, document.Options{}), dir, document.ErrRead},
		{"invalid utf-8", fixed, invalid, document.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.decoder.DecodeFile(context.Background(), tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("error %v is not %v", err, tt.kind)
			}
			if document.KindOf(err) != tt.kind {
				t.Fatalf("KindOf = %v, want %v", document.KindOf(err), tt.kind)
			}
			if !strings.Contains(err.Error(), tt.path) {
				t.Fatalf("error %q does not name path %q", err, tt.path)
			}
		})
	}
}

func TestNotFoundUnwrapsCause(t *testing.T) {
	d := newDecoder(t, document.Options{})
	_, err := d.DecodeFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "file not found: ") {
		t.Fatalf("unexpected message %q", err)
	}
}

func TestDecodeFileHonoursCancelledContext(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("text"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newDecoder(t, document.Options{}).DecodeFile(ctx, path)
	if !errors.Is(err, context.Canceled) || !errors.Is(err, document.ErrRead) {
		t.Fatalf("expected cancelled read error, got %v", err)
	}
}

func TestKindOfForeignError(t *testing.T) {
	if kind := document.KindOf(errors.New("other")); kind != nil {
		t.Fatalf("KindOf = %v, want nil", kind)
	}
}
