package articlemark

import (
	"log"
	"os"
)

// Logger 全局日志记录器
//
// 转换本身不写日志；预览服务器用它记录请求，加载器用它记录
// 非 Strict 模式下的文档校验问题，Markdown 渲染失败时也会记一条。
var Logger = log.New(os.Stderr, "[articlemark] ", log.LstdFlags)

// SetLogger 替换 Logger，例如在测试中写入 bytes.Buffer；nil 被忽略
func SetLogger(logger *log.Logger) {
	if logger == nil {
		return
	}
	Logger = logger
}
