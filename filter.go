package longboard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sethierophant/longboard/internal/parser"
)

// FilterRule 词语过滤规则：解析前对帖文原文做的全局正则替换
type FilterRule = parser.FilterRule

// filterFile 过滤规则配置文件的结构
type filterFile struct {
	FilterRules []FilterRule `yaml:"filter_rules"`
}

// LoadFilters 从 YAML 配置文件读取过滤规则。文件形如：
//
//	filter_rules:
//	  - pattern: "\\btbh\\b"
//	    replace_with: "desu"
//	  - pattern: "(?i)\\bsmh\\b"
//	    replace_with: "baka"
//
// 模式编译失败时返回错误并指明出错的模式
func LoadFilters(path string) ([]FilterRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read filter config: %w", err)
	}
	var f filterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse filter config %s: %w", path, err)
	}
	return f.FilterRules, nil
}
