// Package parser 把原始帖文解析为文档树。
//
// 解析分三步：按序应用过滤规则，规范化输入，然后逐行切块并对
// 块内容做行内扫描。整个过程对任意输入都有结果，没有错误路径。
package parser

import "github.com/sethierophant/longboard/internal/ast"

// DefaultMaxSpanDepth 行内嵌套深度上限的默认值。超过上限后
// 粗体、斜体、剧透不再嵌套，定界符退化为字面文本
const DefaultMaxSpanDepth = 32

// Config 控制一次解析
type Config struct {
	// Filters 在解析前按声明顺序应用的正则替换规则
	Filters []FilterRule
	// MaxSpanDepth 行内嵌套深度上限；非正值取 DefaultMaxSpanDepth
	MaxSpanDepth int
}

// Parse 把帖文解析为块序列。空输入产生空序列
func Parse(text string, cfg Config) []ast.Block {
	if cfg.MaxSpanDepth <= 0 {
		cfg.MaxSpanDepth = DefaultMaxSpanDepth
	}
	text = applyFilters(text, cfg.Filters)
	text = preprocess(text)

	raw := splitBlocks(text)
	blocks := make([]ast.Block, 0, len(raw))
	for _, rb := range raw {
		switch rb.kind {
		case blockHeader:
			blocks = append(blocks, &ast.Header{Content: parseInline(rb.text, 0, cfg.MaxSpanDepth)})
		case blockQuote:
			blocks = append(blocks, &ast.Quote{Content: parseInline(rb.text, 0, cfg.MaxSpanDepth)})
		case blockCode:
			blocks = append(blocks, &ast.CodeBlock{Language: rb.lang, Text: rb.text})
		default:
			blocks = append(blocks, &ast.Paragraph{Content: parseInline(rb.text, 0, cfg.MaxSpanDepth)})
		}
	}
	return blocks
}
