package longboard

import "github.com/sethierophant/longboard/internal/ast"

// 导出节点类型别名，便于调用方遍历 Blocks() 返回的文档树
type (
	Block     = ast.Block
	Header    = ast.Header
	Quote     = ast.Quote
	CodeBlock = ast.CodeBlock
	Paragraph = ast.Paragraph

	Inline   = ast.Inline
	Text     = ast.Text
	Bold     = ast.Bold
	Italic   = ast.Italic
	Spoiler  = ast.Spoiler
	CodeSpan = ast.CodeSpan
	PostRef  = ast.PostRef
	Link     = ast.Link
)
