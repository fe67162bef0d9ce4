package render

import (
	"net/url"
	"regexp"
)

// languageRe 围栏语言标记允许的字符集。标记出现在 class 属性里
// 且来自用户输入，必须整体匹配才会被采用
var languageRe = regexp.MustCompile(`^[0-9A-Za-z._+-]+$`)

// languageClass 返回代码块 code 元素的 class 值。标记为空或含
// 白名单之外的字符时返回 false，调用方省略整个属性
func languageClass(lang string) (string, bool) {
	if lang == "" || !languageRe.MatchString(lang) {
		return "", false
	}
	return "language-" + lang, true
}

// safeURL 校验并规范化 href 候选值。只接受 http、https 与相对
// 地址；返回 url.URL 的规范序列化，与净化器重写后的形式一致。
// 解析失败或 scheme 不允许时返回 false
func safeURL(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch u.Scheme {
	case "", "http", "https":
	default:
		return "", false
	}
	s := u.String()
	if s == "" {
		return "", false
	}
	return s, true
}
