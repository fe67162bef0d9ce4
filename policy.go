package longboard

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	blockcodeClassRe = regexp.MustCompile(`^blockcode$`)
	languageClassRe  = regexp.MustCompile(`^language-[0-9A-Za-z._+-]+$`)
	spoilerClassRe   = regexp.MustCompile(`^spoiler$`)
	postRefClassRe   = regexp.MustCompile(`^post-ref$`)
	linkRelRe        = regexp.MustCompile(`^nofollow noopener$`)
	linkTargetRe     = regexp.MustCompile(`^_blank$`)
)

var (
	defaultPolicy     *bluemonday.Policy
	defaultPolicyOnce sync.Once
)

// Policy 返回净化策略（单例）。策略恰好允许渲染器的输出词汇表，
// 词汇表之外的标签和属性一律剥除：
//
//   - h3、p、blockquote、strong、em
//   - pre[class=blockcode]、code[class=language-*]、span[class=spoiler]
//   - a[class=post-ref]，以及带 href/rel/target 的自动链接锚
//   - href 只接受 http、https 与相对地址
func Policy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("h3", "p", "blockquote", "pre", "code", "strong", "em", "span", "a")
		p.AllowAttrs("class").Matching(blockcodeClassRe).OnElements("pre")
		p.AllowAttrs("class").Matching(languageClassRe).OnElements("code")
		p.AllowAttrs("class").Matching(spoilerClassRe).OnElements("span")
		p.AllowAttrs("class").Matching(postRefClassRe).OnElements("a")
		p.AllowAttrs("href").OnElements("a")
		p.AllowAttrs("rel").Matching(linkRelRe).OnElements("a")
		p.AllowAttrs("target").Matching(linkTargetRe).OnElements("a")
		p.AllowURLSchemes("http", "https")
		p.AllowRelativeURLs(true)
		defaultPolicy = p
	})
	return defaultPolicy
}

// Sanitize 用 Policy 清洗一段 HTML。渲染器的输出应当原样通过，
// 该函数同时供调用方清洗来源不明的帖文 HTML
func Sanitize(html string) string {
	return Policy().Sanitize(html)
}
