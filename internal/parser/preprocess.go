package parser

import (
	"strings"
	"unicode/utf8"
)

// newlineNormalizer 统一换行符：CRLF 与孤立 CR 均归一为 LF
var newlineNormalizer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// preprocess 在分块前规范化输入。
//
// 无效的 UTF-8 序列与 NUL 字节替换为 U+FFFD（与 HTML 解析器的
// 处理一致，保证净化阶段不改写输出），换行统一为 LF。
// 其余字节原样保留。
func preprocess(text string) string {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	if strings.ContainsRune(text, 0) {
		text = strings.ReplaceAll(text, "\x00", "�")
	}
	if strings.Contains(text, "\r") {
		text = newlineNormalizer.Replace(text)
	}
	return text
}
