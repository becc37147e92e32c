package game

import (
	"bytes"
	"fmt"
	"image"
	"time"
)

// AsyncImage 后台解码的图片
//
// 实现 scratch.ImageSource：解码完成前 Decoded() 返回 false，
// NaturalSize() 返回 (0, 0)。解码结果在关闭 done 通道之前写入，
// 因此游戏循环读取时不需要加锁。
type AsyncImage struct {
	path string
	done chan struct{}
	img  image.Image
	err  error
}

func newAsyncImage(path string) *AsyncImage {
	return &AsyncImage{
		path: path,
		done: make(chan struct{}),
	}
}

// NewDecodedImage 包装一张已解码的图片（测试和工具使用）
func NewDecodedImage(path string, img image.Image) *AsyncImage {
	a := newAsyncImage(path)
	a.img = img
	close(a.done)
	return a
}

// decode 在后台 goroutine 中运行
func (a *AsyncImage) decode(read func() ([]byte, error)) {
	defer close(a.done)

	data, err := read()
	if err != nil {
		a.err = err
		return
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		a.err = fmt.Errorf("failed to decode image %s: %w", a.path, err)
		return
	}
	a.img = img
}

// Path 返回图片路径
func (a *AsyncImage) Path() string {
	return a.path
}

// Done 返回解码结束（成功或失败）时关闭的通道
func (a *AsyncImage) Done() <-chan struct{} {
	return a.done
}

// Finished 解码是否已结束（不论成功与否）
func (a *AsyncImage) Finished() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

// Decoded 解码是否已成功完成
func (a *AsyncImage) Decoded() bool {
	return a.Finished() && a.err == nil && a.img != nil
}

// Err 返回解码错误，解码未结束或成功时为 nil
func (a *AsyncImage) Err() error {
	if !a.Finished() {
		return nil
	}
	return a.err
}

// NaturalSize 返回图片原始尺寸，未解码时为 (0, 0)
func (a *AsyncImage) NaturalSize() (int, int) {
	if !a.Decoded() {
		return 0, 0
	}
	b := a.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image 返回解码后的图片，未解码时为 nil
func (a *AsyncImage) Image() image.Image {
	if !a.Decoded() {
		return nil
	}
	return a.img
}

// Wait 阻塞等待解码结束，超时返回 false（工具和测试使用，游戏循环中不要调用）
func (a *AsyncImage) Wait(timeout time.Duration) bool {
	select {
	case <-a.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
