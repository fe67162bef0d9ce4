// Package ast 定义帖文文档树的节点类型。
//
// Parse 产出 []Block；块内容是 []Inline。渲染器按节点类型遍历，
// 词汇表固定，不存在其他节点种类。
package ast

// Block 表示一个块级节点
type Block interface {
	isBlock()
}

// Header 单行标题块（# 行）
type Header struct {
	Content []Inline
}

// Quote 单行引用块（> 行）
type Quote struct {
	Content []Inline
}

// CodeBlock 围栏代码块。Text 为围栏之间各行以 \n 连接的原文，
// 不做行内解析；Language 为围栏行上去除首尾空白后的语言标记，
// 空串表示没有标记
type CodeBlock struct {
	Language string
	Text     string
}

// Paragraph 普通段落（单个物理行）
type Paragraph struct {
	Content []Inline
}

func (*Header) isBlock()    {}
func (*Quote) isBlock()     {}
func (*CodeBlock) isBlock() {}
func (*Paragraph) isBlock() {}

// Inline 表示一个行内节点
type Inline interface {
	isInline()
}

// Text 字面文本。相邻的字面字符在扫描时合并为一个 Text
type Text string

// Bold 粗体（**...**），内容递归解析
type Bold struct {
	Children []Inline
}

// Italic 斜体（*...*），内容递归解析
type Italic struct {
	Children []Inline
}

// Spoiler 剧透（~...~），内容递归解析
type Spoiler struct {
	Children []Inline
}

// CodeSpan 行内代码（`...`），内容字面保留
type CodeSpan string

// PostRef 帖子引用（>>123）。URI 由 ResolveRefs 在解析后填充，
// 未解析时为空，渲染为不带 href 的锚
type PostRef struct {
	ID  uint64
	URI string
}

// Link http:// 或 https:// 自动链接，值为链接原文
type Link string

func (Text) isInline()     {}
func (*Bold) isInline()    {}
func (*Italic) isInline()  {}
func (*Spoiler) isInline() {}
func (CodeSpan) isInline() {}
func (*PostRef) isInline() {}
func (Link) isInline()     {}
