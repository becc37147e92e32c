// Package main validates a scratch card configuration file.
//
// Usage:
//
//	go run ./cmd/validate_config [path]   (default: data/scratch.yaml)
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/decker502/scratchcard/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	path := config.ScratchConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	// 拼写错误的键在正常解析时会被静默忽略，这里单独检查
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		fmt.Printf("❌ YAML 解析失败: %v\n", err)
		os.Exit(1)
	}
	known := knownKeys()
	var unknown []string
	for key := range raw {
		if !known[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	for _, key := range unknown {
		fmt.Printf("❌ 未知字段: %s\n", key)
	}

	cfg, err := config.ParseScratchConfig(data)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if len(unknown) > 0 {
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 揭晓阈值 %.2f，笔刷 %.0f，淡出步长 %.3f\n", cfg.RevealThreshold, cfg.BrushSize, cfg.FadeStep)
	fmt.Printf("✅ 卡片尺寸 %dx%d，遮罩 %s\n", cfg.BaseWidth, cfg.BaseHeight, cfg.MaskColor)
}

// knownKeys 从默认配置的序列化结果中取得全部字段名
func knownKeys() map[string]bool {
	data, err := yaml.Marshal(config.DefaultScratchConfig())
	if err != nil {
		return map[string]bool{}
	}
	var m map[string]interface{}
	_ = yaml.Unmarshal(data, &m)
	keys := make(map[string]bool, len(m))
	for k := range m {
		keys[k] = true
	}
	return keys
}
