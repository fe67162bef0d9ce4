package parser

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// FilterRule 词语过滤规则：对原始帖文做一次全局正则替换，
// 在解析之前按声明顺序应用。替换结果和普通输入一样参与解析，
// 规则因此可以引入标记
type FilterRule struct {
	Pattern     *regexp.Regexp
	ReplaceWith string
}

// UnmarshalYAML 从 {pattern, replace_with} 形式的配置项构造规则，
// 编译失败的模式是配置错误
func (r *FilterRule) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Pattern     string `yaml:"pattern"`
		ReplaceWith string `yaml:"replace_with"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	re, err := regexp.Compile(raw.Pattern)
	if err != nil {
		return fmt.Errorf("filter pattern %q: %w", raw.Pattern, err)
	}
	r.Pattern = re
	r.ReplaceWith = raw.ReplaceWith
	return nil
}

// applyFilters 按声明顺序应用全部规则
func applyFilters(text string, rules []FilterRule) string {
	for _, r := range rules {
		text = r.Pattern.ReplaceAllString(text, r.ReplaceWith)
	}
	return text
}
