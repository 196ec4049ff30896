package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pieces(src string) []string {
	var out []string
	for _, r := range splitTopLevel([]byte(src), 0, uint(len(src))) {
		out = append(out, src[r.start:r.end])
	}

	return out
}

func TestSplitTopLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "", nil},
		{"single", `"nop"`, []string{`"nop"`}},
		{"nested commas", `"a", in(reg) f(x, y), options(nostack, pure)`,
			[]string{`"a"`, "in(reg) f(x, y)", "options(nostack, pure)"}},
		{"comma in string", `"a, b", out(reg) z`, []string{`"a, b"`, "out(reg) z"}},
		{"escaped quote", `"a\", b", const 1`, []string{`"a\", b"`, "const 1"}},
		{"raw string", `r#"x, "y""#, sym f`, []string{`r#"x, "y""#`, "sym f"}},
		{"trailing comma", "\"nop\",\n", []string{`"nop"`}},
		{"register name with r", "in(reg) r, out(reg) _", []string{"in(reg) r", "out(reg) _"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, pieces(tt.src))
		})
	}
}

func TestIsAsmPiece(t *testing.T) {
	t.Parallel()

	for _, text := range []string{
		"in(reg) x", "inlateout(reg) x => y", "options(att_syntax)", "clobber_abi(\"C\")",
		"const 4", "sym foo", "label { }", "name = in(reg) x",
	} {
		assert.True(t, isAsmPiece(text), text)
	}

	for _, text := range []string{`"nop"`, "concat!(\"a\")", "constant", "x == y", "input"} {
		assert.False(t, isAsmPiece(text), text)
	}
}

func TestDocPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		want  string
		style docStyle
	}{
		{"/// hello\n", "hello", docOuter},
		{"//! crate docs", "crate docs", docInner},
		{"//// not docs", "", docNone},
		{"// plain", "", docNone},
		{"/** one */", "one", docOuter},
		{"/*! inner */", "inner", docInner},
		{"/**/", "", docNone},
		{"/*** stars */", "", docNone},
	}

	for _, tt := range tests {
		got, style := docPayload(tt.text)
		assert.Equal(t, tt.want, got, tt.text)
		assert.Equal(t, tt.style, style, tt.text)
	}
}

func TestJoinDocs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, joinDocs(nil))
	assert.Nil(t, joinDocs([]string{"", " "}))

	got := joinDocs([]string{"a", "", "b"})
	if assert.NotNil(t, got) {
		assert.Equal(t, "a\n\nb", *got)
	}
}
