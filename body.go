package longboard

import (
	"github.com/sethierophant/longboard/internal/ast"
	"github.com/sethierophant/longboard/internal/parser"
	"github.com/sethierophant/longboard/internal/render"
)

// PostBody 一篇帖文解析后的文档树
type PostBody struct {
	blocks []ast.Block
}

// RefResolver 把被引用的帖子编号映射为该帖的链接地址。
// 返回 ok=false 表示引用无法解析（比如帖子已被删除），
// 对应的锚渲染时不带 href
type RefResolver func(id uint64) (uri string, ok bool)

// Parse 把帖文解析为文档树
//
// 参数:
//   - text: 帖文原文
//   - opts: 解析选项
//
// 返回:
//   - *PostBody: 文档树。任何输入都有结果，绝不失败
func Parse(text string, opts ...Option) *PostBody {
	options := applyOptions(opts...)
	blocks := parser.Parse(text, parser.Config{
		Filters:      options.Filters,
		MaxSpanDepth: options.MaxSpanDepth,
	})
	return &PostBody{blocks: blocks}
}

// Blocks 返回文档树的块序列
func (b *PostBody) Blocks() []Block {
	return b.blocks
}

// ResolveRefs 用 r 解析正文中的全部 >>引用，把返回的地址填入
// 对应节点。同一编号出现多次就解析多次；未解析的引用保持原样
func (b *PostBody) ResolveRefs(r RefResolver) {
	for _, blk := range b.blocks {
		switch blk := blk.(type) {
		case *ast.Header:
			resolveSpans(blk.Content, r)
		case *ast.Quote:
			resolveSpans(blk.Content, r)
		case *ast.Paragraph:
			resolveSpans(blk.Content, r)
		}
	}
}

func resolveSpans(spans []ast.Inline, r RefResolver) {
	for _, s := range spans {
		switch s := s.(type) {
		case *ast.PostRef:
			if uri, ok := r(s.ID); ok {
				s.URI = uri
			}
		case *ast.Bold:
			resolveSpans(s.Children, r)
		case *ast.Italic:
			resolveSpans(s.Children, r)
		case *ast.Spoiler:
			resolveSpans(s.Children, r)
		}
	}
}

// HTML 渲染文档树并经净化器复核
//
// 净化器对正确的渲染输出是恒等变换；两者不一致说明渲染器产出了
// 词汇表之外的内容，按净化结果为准并记录日志。
//
// 返回:
//   - string: 净化后的 HTML 片段
func (b *PostBody) HTML() string {
	rendered := render.Document(b.blocks)
	sanitized := Sanitize(rendered)
	if sanitized != rendered {
		Logger.Printf("sanitizer rewrote rendered output (%d bytes -> %d bytes)", len(rendered), len(sanitized))
	}
	return sanitized
}
