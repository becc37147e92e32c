//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前需要先把资源复制到本目录
// （见 mobile.go 顶部说明）。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/scratch.yaml
var dataFS embed.FS
