// Package render 把文档树序列化为 HTML。
//
// 输出词汇表是封闭的：h3、p、blockquote、pre.blockcode、
// code(.language-X)、strong、em、span.spoiler、a.post-ref 与
// 自动链接的 a。任何文本与属性值写入前都先转义，转义形式与
// 净化器的再序列化形式逐字节一致。
package render

import (
	"html"
	"strconv"
	"strings"

	"github.com/sethierophant/longboard/internal/ast"
)

// Document 把块序列渲染为 HTML 字符串
func Document(blocks []ast.Block) string {
	var w writer
	for _, b := range blocks {
		w.block(b)
	}
	return w.sb.String()
}

// writer 持有输出缓冲，方法按节点类型分派
type writer struct {
	sb strings.Builder
}

// --- 块级节点 ---

func (w *writer) block(b ast.Block) {
	switch b := b.(type) {
	case *ast.Header:
		w.sb.WriteString("<h3>")
		w.inlines(b.Content)
		w.sb.WriteString("</h3>")
	case *ast.Quote:
		w.sb.WriteString("<blockquote><p>")
		w.inlines(b.Content)
		w.sb.WriteString("</p></blockquote>")
	case *ast.CodeBlock:
		w.codeBlock(b)
	case *ast.Paragraph:
		w.sb.WriteString("<p>")
		w.inlines(b.Content)
		w.sb.WriteString("</p>")
	}
}

// codeBlock 渲染围栏代码块。语言标记来自用户输入，只有通过
// 字符白名单校验才会进入 class 属性，否则整个省略
func (w *writer) codeBlock(b *ast.CodeBlock) {
	w.sb.WriteString(`<pre class="blockcode">`)
	if class, ok := languageClass(b.Language); ok {
		w.sb.WriteString(`<code class="`)
		w.sb.WriteString(class)
		w.sb.WriteString(`">`)
	} else {
		w.sb.WriteString("<code>")
	}
	w.sb.WriteString(html.EscapeString(b.Text))
	w.sb.WriteString("</code></pre>")
}

// --- 行内节点 ---

func (w *writer) inlines(spans []ast.Inline) {
	for _, s := range spans {
		w.inline(s)
	}
}

func (w *writer) inline(s ast.Inline) {
	switch s := s.(type) {
	case ast.Text:
		w.sb.WriteString(html.EscapeString(string(s)))
	case *ast.Bold:
		w.sb.WriteString("<strong>")
		w.inlines(s.Children)
		w.sb.WriteString("</strong>")
	case *ast.Italic:
		w.sb.WriteString("<em>")
		w.inlines(s.Children)
		w.sb.WriteString("</em>")
	case *ast.Spoiler:
		w.sb.WriteString(`<span class="spoiler">`)
		w.inlines(s.Children)
		w.sb.WriteString("</span>")
	case ast.CodeSpan:
		w.sb.WriteString("<code>")
		w.sb.WriteString(html.EscapeString(string(s)))
		w.sb.WriteString("</code>")
	case *ast.PostRef:
		w.postRef(s)
	case ast.Link:
		w.link(string(s))
	}
}

// postRef 渲染帖子引用。URI 已由 ResolveRefs 填充时附带 href，
// 否则只有 class
func (w *writer) postRef(ref *ast.PostRef) {
	w.sb.WriteString(`<a class="post-ref"`)
	if ref.URI != "" {
		if u, ok := safeURL(ref.URI); ok {
			w.sb.WriteString(` href="`)
			w.sb.WriteString(html.EscapeString(u))
			w.sb.WriteString(`"`)
		}
	}
	w.sb.WriteByte('>')
	w.sb.WriteString(strconv.FormatUint(ref.ID, 10))
	w.sb.WriteString("</a>")
}

// link 渲染自动链接；URL 无法规范化时退化为纯文本
func (w *writer) link(raw string) {
	u, ok := safeURL(raw)
	if !ok {
		w.sb.WriteString(html.EscapeString(raw))
		return
	}
	w.sb.WriteString(`<a href="`)
	w.sb.WriteString(html.EscapeString(u))
	w.sb.WriteString(`" rel="nofollow noopener" target="_blank">`)
	w.sb.WriteString(html.EscapeString(raw))
	w.sb.WriteString("</a>")
}
