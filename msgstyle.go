// Package msgstyle 将聊天消息正文转换为带类型的渲染树
//
// 消息正文使用一种轻量的内联标记：单字符强调标记（*粗体*、_斜体_、~删除线~、`代码`），
// 兼容 Markdown 的 **粗体**，自动识别的 http(s) 链接，以及由调用方按 UTF-16 偏移量
// 提供的提及（mention）范围。块级结构包括 ``` 代码块、> 引用、- 无序列表和 N. 有序列表。
//
// 核心功能：
//   - 将正文转换为渲染树（段落、代码块、引用、列表），不依赖任何 UI 工具包
//   - 反斜杠转义：\* \_ \~ \` \> 保持字面量
//   - 提及范围裁剪与重叠处理；未提供范围时启发式识别 @handle
//   - 将渲染树扁平化为纯文本 + UTF-16 实体，供基于实体的客户端使用
//
// 主要 API：
//   - Build(): 同步构建渲染树
//   - BuildWithOptions(): 带配置构建
//   - Entities(): 渲染树 → (text, entities)
//   - Debug(): 渲染树的可读转储
//
// 示例：
//
//	tree := msgstyle.Build("Hey @alice, check *this*!", []msgstyle.MentionRange{{Begin: 4, End: 10}})
//	for _, block := range tree {
//	    switch b := block.(type) {
//	    case *msgstyle.Paragraph:
//	        // 渲染 b.Segments
//	    case *msgstyle.CodeBlock:
//	        // 等宽显示 b.Code，并提供复制按钮
//	    }
//	}
//
// Build 是纯函数：每次调用只分配本次调用的数据，可以并发调用。
// HTML 渲染和代码块复制见 render 包。
package msgstyle
