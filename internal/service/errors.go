package service

import "errors"

// 服务层的哨兵错误。handler 依据 errors.Is 把它们映射为 HTTP 状态码，
// 其余未列出的错误一律按数据访问失败处理。
var (
	// ErrEmptyQuery 表示查询串在规范化后为空，搜索在读库之前就被拒绝。
	ErrEmptyQuery = errors.New("搜索词为空")
	// ErrNoSearchResults 表示模糊搜索没有得分达到阈值的命中。
	// 它与精确搜索返回空列表是两种不同的结果：后者是合法的空成功。
	ErrNoSearchResults = errors.New("没有找到匹配的问题")

	// ErrQuestionNotFound 指定的问题不存在。
	ErrQuestionNotFound = errors.New("问题不存在")
	// ErrSubQuestionNotFound 指定的子问题不存在。
	ErrSubQuestionNotFound = errors.New("子问题不存在")
	// ErrCategoryNotFound 创建问题时指定的分类不存在。
	ErrCategoryNotFound = errors.New("分类不存在")
	// ErrParentQuestionNotFound 创建子问题时指定的父问题不存在。
	ErrParentQuestionNotFound = errors.New("父问题不存在")
	// ErrParentSubQuestionNotFound 创建子问题时指定的父级子问题不存在。
	ErrParentSubQuestionNotFound = errors.New("父级子问题不存在")

	// ErrSubQuestionWrongParent 子问题不属于请求中指定的顶层问题。
	ErrSubQuestionWrongParent = errors.New("子问题不属于指定的顶层问题")
	// ErrSubQuestionHasChildren 下挂有嵌套子问题的节点不允许删除。
	ErrSubQuestionHasChildren = errors.New("存在嵌套子问题，无法删除")
)
