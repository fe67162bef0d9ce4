// Package longboard 把图版帖文标记渲染为安全的 HTML。
//
// 这个包实现发帖用的轻量标记方言（非 CommonMark），输入一段帖文
// 原文，输出固定词汇表内的 HTML：
//   - 块级：# 标题、> 引用、``` 围栏代码块、普通段落
//   - 行内：**粗体**、*斜体*、~剧透~、`行内代码`、>>123 帖子引用、
//     http(s):// 自动链接、反斜杠转义
//
// 解析是全函数：任何 UTF-8 输入（包括空串）都有结果，畸形标记
// 退化为字面文本，不存在解析错误。渲染输出先逐节点转义，再经
// 白名单净化器复核，正确输出原样通过。
//
// 主要 API：
//   - Parse(): 解析为文档树，渲染前可解析帖子引用
//   - RenderHTML(): 一步完成解析与渲染
//
// 示例：
//
//	// 一步渲染
//	html := longboard.RenderHTML("# Noots general\nPost stacks, post research")
//
//	// 解析、填充引用地址、再渲染
//	body := longboard.Parse(text, longboard.WithFilters(rules...))
//	body.ResolveRefs(func(id uint64) (string, bool) {
//	    return db.PostURI(id)
//	})
//	html = body.HTML()
package longboard

// RenderHTML 把帖文一步渲染为净化后的 HTML
//
// 这是主要的便捷 API。需要在渲染前解析 >>引用或读取文档树时，
// 使用 Parse()。
//
// 参数：
//   - text: 帖文原文
//   - opts: 解析选项
//
// 返回：
//   - string: HTML 片段；空输入产生空串
func RenderHTML(text string, opts ...Option) string {
	return Parse(text, opts...).HTML()
}
