// Package handler 包含所有 Gin HTTP 处理器，只做参数解析与状态码映射。
package handler

import (
	"errors"
	"net/http"

	"hotline-faq-go/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError 把服务层哨兵错误映射为 HTTP 状态码。
// 未识别的错误按数据访问失败处理，细节只进日志不出响应。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrSubQuestionWrongParent):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoSearchResults),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrSubQuestionNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrParentQuestionNotFound),
		errors.Is(err, service.ErrParentSubQuestionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSubQuestionHasChildren):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "服务器内部错误"})
	}
}

// respondOK 返回统一的成功响应包装。
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"code": 200, "data": data, "message": "success"})
}
