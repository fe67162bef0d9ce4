package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/sethierophant/longboard/internal/ast"
)

// 行内扫描：对块内容做单遍扫描。每个位置按固定优先级尝试
// 转义、帖子引用、自动链接、行内代码、粗体、斜体、剧透；
// 都不命中时当前字节并入字面文本。没有闭合定界符的构造退化
// 为字面文本并从下一个字符继续，因此扫描对任意输入都有结果。

// parseInline 把一行块内容解析为行内节点序列
func parseInline(s string, depth, maxDepth int) []ast.Inline {
	var spans []ast.Inline
	var lit []byte

	flush := func() {
		if len(lit) > 0 {
			spans = append(spans, ast.Text(lit))
			lit = nil
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]

		// 转义：反斜杠 + 标记字符 → 字面输出该字符
		if c == '\\' && i+1 < len(s) && escapable(s[i+1]) {
			lit = append(lit, s[i+1])
			i += 2
			continue
		}

		// >>123 帖子引用。数字串超出 uint64 时不构成引用
		if c == '>' && i+1 < len(s) && s[i+1] == '>' {
			end := digitRun(s, i+2)
			if end > i+2 {
				if id, err := strconv.ParseUint(s[i+2:end], 10, 64); err == nil {
					flush()
					spans = append(spans, &ast.PostRef{ID: id})
					i = end
					continue
				}
			}
		}

		// http:// 与 https:// 自动链接
		if c == 'h' && hasLinkPrefix(s[i:]) {
			end := scanLink(s, i)
			flush()
			spans = append(spans, ast.Link(s[i:end]))
			i = end
			continue
		}

		// `code`：内容字面保留，只还原反斜杠转义。
		// 闭合反引号缺失或内容为空时退化为字面反引号
		if c == '`' {
			if end := findDelim(s, i+1, "`"); end > i+1 {
				flush()
				spans = append(spans, ast.CodeSpan(unescape(s[i+1:end])))
				i = end + 1
				continue
			}
		}

		if depth < maxDepth {
			// **bold**，内容递归解析
			if c == '*' && i+1 < len(s) && s[i+1] == '*' {
				if end := findDelim(s, i+2, "**"); end > i+2 {
					flush()
					spans = append(spans, &ast.Bold{Children: parseInline(s[i+2:end], depth+1, maxDepth)})
					i = end + 2
					continue
				}
			}

			// *italic*：开启与闭合星号都不能是 ** 对的一部分
			if c == '*' && (i+1 >= len(s) || s[i+1] != '*') {
				if end := findSingleStar(s, i+1); end > i+1 {
					flush()
					spans = append(spans, &ast.Italic{Children: parseInline(s[i+1:end], depth+1, maxDepth)})
					i = end + 1
					continue
				}
			}

			// ~spoiler~，内容递归解析
			if c == '~' {
				if end := findDelim(s, i+1, "~"); end > i+1 {
					flush()
					spans = append(spans, &ast.Spoiler{Children: parseInline(s[i+1:end], depth+1, maxDepth)})
					i = end + 1
					continue
				}
			}
		}

		// 字面字符
		lit = append(lit, c)
		i++
	}
	flush()
	return spans
}

// hasLinkPrefix 判断 s 是否以自动链接前缀开头
func hasLinkPrefix(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// scanLink 返回从 start 开始的自动链接的结束下标。链接取前缀之后
// 连续链接字符的最长区段；区段的最后一个字符不在结尾集合中时，
// 只把这一个字符排除在链接之外（句尾的句号、问号因此留在链接外）。
// 区段可以为空，此时链接只含前缀本身。
func scanLink(s string, start int) int {
	i := start + len("http://")
	if strings.HasPrefix(s[start:], "https://") {
		i = start + len("https://")
	}
	end := i
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !isLinkRune(r) {
			break
		}
		end += size
	}
	if end > i {
		if r, size := utf8.DecodeLastRuneInString(s[:end]); !isLinkFinalRune(r) {
			end -= size
		}
	}
	return end
}
