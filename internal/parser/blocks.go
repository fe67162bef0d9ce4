package parser

import "strings"

// 块切分：逐行扫描，每个物理行最多产生一个块；围栏代码块把
// 后续行聚合到闭合围栏为止。空行与仅空白的行不产生块。

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeader
	blockQuote
	blockCode
)

// rawBlock 是未经行内解析的块：text 为块内容原文，
// lang 仅对代码块有效
type rawBlock struct {
	kind blockKind
	text string
	lang string
}

const fence = "```"

// splitBlocks 把规范化后的文本切分为原始块序列
func splitBlocks(text string) []rawBlock {
	var blocks []rawBlock
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.TrimSpace(line) == "":
			// 空行：跳过
		case strings.HasPrefix(line, fence):
			lang := strings.TrimSpace(line[len(fence):])
			var body []string
			for i++; i < len(lines); i++ {
				// 闭合围栏必须是恰好 ``` 的一行
				if lines[i] == fence {
					break
				}
				body = append(body, lines[i])
			}
			// 没有闭合围栏时，剩余各行全部并入代码块
			blocks = append(blocks, rawBlock{
				kind: blockCode,
				text: strings.Join(body, "\n"),
				lang: lang,
			})
		case line[0] == '#':
			// 标记后至多跳过一个空格
			content := line[1:]
			if strings.HasPrefix(content, " ") {
				content = content[1:]
			}
			blocks = append(blocks, rawBlock{kind: blockHeader, text: content})
		case line[0] == '>' && !strings.HasPrefix(line, ">>"):
			// >> 开头的行不是引用，留给行内扫描器识别帖子引用
			blocks = append(blocks, rawBlock{kind: blockQuote, text: line[1:]})
		case line[0] == '\\' && len(line) > 1 &&
			(line[1] == '#' || line[1] == '>' || strings.HasPrefix(line[1:], fence)):
			// 行首反斜杠压制块标记：去掉反斜杠，标记字面保留
			blocks = append(blocks, rawBlock{kind: blockParagraph, text: line[1:]})
		default:
			blocks = append(blocks, rawBlock{kind: blockParagraph, text: line})
		}
	}
	return blocks
}
