// Package articlemark 将文章正文中的轻量标记转换为可直接插入页面的 HTML 片段
//
// 支持的写法：
//   - Markdown 图片 ![alt](url) 与 [image: url]
//   - 独立一行的图片 URL（.jpg .jpeg .png .gif .webp .svg）
//   - 关键词 + URL，例如 "youtube https://..." → 📺 Xem video trên YouTube
//   - @URL 与裸 URL
//   - 音频文件路径（.mp3 .wav .ogg .m4a）→ <audio> 播放器
//
// 其余文本统一做 HTML 转义，换行转为 <br>。转换不会返回错误：
// 无法识别的标记按普通文本处理。
//
// 主要 API：
//   - Convert(): 完整转换
//   - ExpandImages(): 只替换图片
//   - Tokenize() / Render(): 分步执行
//
// 示例：
//
//	html := articlemark.Convert("youtube https://youtu.be/abc\n![](a.png)")
//
//	// 保留正文中已有的 HTML 标签，并按输出白名单清理
//	html = articlemark.Convert(body, articlemark.WithTrustedHTML(true))
package articlemark
