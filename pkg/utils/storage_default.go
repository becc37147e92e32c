//go:build !android

package utils

// EnsureStorageDir 确保 gdata 的存储目录存在
// 非 Android 平台上 gdata 会自行创建目录，这里什么也不做
func EnsureStorageDir() error {
	return nil
}
