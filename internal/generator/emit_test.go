package generator

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xll-gen/bin2c/internal/packer"
)

func emit(t *testing.T, decl Declaration, data []byte) (string, int) {
	t.Helper()
	var sb strings.Builder
	n, err := Emit(&sb, decl, data)
	if err != nil {
		t.Fatalf("Emit() unexpected error: %v", err)
	}
	return sb.String(), n
}

func TestEmit(t *testing.T) {
	base := Declaration{Symbol: "blob", Width: packer.Width8, Preamble: true, Uncompressed: -1}

	tests := []struct {
		name      string
		decl      func(Declaration) Declaration
		data      []byte
		want      string
		wantCount int
	}{
		{
			name: "width 8 defaults",
			decl: func(d Declaration) Declaration { return d },
			data: []byte{1, 2, 3},
			want: "/* generated by Bin2C */\n#include <stdint.h>\n\n" +
				"const uint8_t blob[3] = {\n\t0x01, 0x02, 0x03\n};\n\n" +
				"const unsigned int blob_size = 3;\n",
			wantCount: 3,
		},
		{
			name: "width 16 padded",
			decl: func(d Declaration) Declaration { d.Width = packer.Width16; return d },
			data: []byte{1, 2, 3},
			want: "/* generated by Bin2C */\n#include <stdint.h>\n\n" +
				"const uint16_t blob[2] = {\n\t0x0201, 0x0003\n};\n\n" +
				"const unsigned int blob_size = 2;\n",
			wantCount: 2,
		},
		{
			name: "macro mutable no preamble",
			decl: func(d Declaration) Declaration {
				d.Macro, d.Mutable, d.Preamble = true, true, false
				return d
			},
			data: []byte{0},
			want: "\n\nuint8_t blob[1] = {\n\t0x00\n};\n\n" +
				"#define blob_size 1\n",
			wantCount: 1,
		},
		{
			name: "empty",
			decl: func(d Declaration) Declaration { return d },
			data: nil,
			want: "/* generated by Bin2C */\n#include <stdint.h>\n\n" +
				"const uint8_t blob[0] = {\n};\n\n" +
				"const unsigned int blob_size = 0;\n",
			wantCount: 0,
		},
		{
			name: "compressed constant",
			decl: func(d Declaration) Declaration { d.Width = packer.Width32; d.Uncompressed = 100; return d },
			data: []byte{0xde, 0xad, 0xbe, 0xef, 0x01},
			want: "/* generated by Bin2C */\n#include <stdint.h>\n\n" +
				"const uint32_t blob[2] = {\n\t0xefbeadde, 0x00000001\n};\n\n" +
				"const unsigned int blob_size = 2;\n" +
				"const unsigned int blob_size_uncompressed = 100;\n",
			wantCount: 2,
		},
		{
			name: "compressed macro",
			decl: func(d Declaration) Declaration { d.Macro = true; d.Uncompressed = 0; return d },
			data: []byte{7},
			want: "/* generated by Bin2C */\n#include <stdint.h>\n\n" +
				"const uint8_t blob[1] = {\n\t0x07\n};\n\n" +
				"#define blob_size 1\n" +
				"#define blob_size_uncompressed 0\n",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := emit(t, tt.decl(base), tt.data)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
			}
			if n != tt.wantCount {
				t.Errorf("Emit() count = %d, want %d", n, tt.wantCount)
			}
		})
	}
}

func TestEmitRows(t *testing.T) {
	data := make([]byte, 33)
	for i := range data {
		data[i] = byte(0xf0 + i)
	}
	got, _ := emit(t, Declaration{Symbol: "rows", Width: packer.Width32, Uncompressed: -1}, data)

	want := "\n\nconst uint32_t rows[9] = {" +
		"\n\t0xf3f2f1f0, 0xf7f6f5f4, 0xfbfaf9f8, 0xfffefdfc, " +
		"\n\t0x03020100, 0x07060504, 0x0b0a0908, 0x0f0e0d0c, " +
		"\n\t0x00000010" +
		"\n};\n\nconst unsigned int rows_size = 9;\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Emit() mismatch (-want +got):\n%s", diff)
	}
}

func TestSizeDecl(t *testing.T) {
	if got, want := sizeDecl(true, "x", "_size", 4), "#define x_size 4"; got != want {
		t.Errorf("sizeDecl(macro) = %q, want %q", got, want)
	}
	if got, want := sizeDecl(false, "x", "_size", 4), "const unsigned int x_size = 4;"; got != want {
		t.Errorf("sizeDecl(const) = %q, want %q", got, want)
	}
}
