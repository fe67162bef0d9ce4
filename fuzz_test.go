package longboard

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sethierophant/longboard/internal/render"
)

// FuzzRenderHTML 模糊测试：任何输入都要产出净化器恒等的合法片段
func FuzzRenderHTML(f *testing.F) {
	for _, seed := range renderCorpus {
		f.Add(seed)
	}
	f.Add("\x00\xff\r\n")
	f.Add(strings.Repeat("*", 64))
	f.Add(strings.Repeat("~**", 40) + "x")
	f.Add("``` \" onload=\"x\nboom\n```")
	f.Add(">>18446744073709551615 https://%zz \\")

	f.Fuzz(func(t *testing.T, text string) {
		body := Parse(text)
		raw := render.Document(body.Blocks())
		if !utf8.ValidString(raw) {
			t.Errorf("rendered output for %q is invalid UTF-8: %q", text, raw)
		}
		if sanitized := Sanitize(raw); sanitized != raw {
			t.Errorf("sanitizer rewrote output for %q:\nraw %q\ngot %q", text, raw, sanitized)
		}
	})
}
