package handler

import (
	"hotline-faq-go/internal/service"
	"hotline-faq-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// SearchHandler 结构体定义了问题搜索相关的处理器。
type SearchHandler struct {
	searchService service.QuestionSearchService
}

// NewSearchHandler 创建一个新的 SearchHandler 实例。
func NewSearchHandler(searchService service.QuestionSearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchQuestions 处理精确搜索请求：GET /question/search?query=...
func (h *SearchHandler) SearchQuestions(c *gin.Context) {
	query := c.Query("query")
	log.Infof("[SearchHandler] 收到精确搜索请求, query: '%s'", query)

	results, err := h.searchService.SearchQuestions(c.Request.Context(), query)
	if err != nil {
		log.Errorf("[SearchHandler] 精确搜索失败, query: '%s', error: %v", query, err)
		respondError(c, err)
		return
	}

	log.Infof("[SearchHandler] 精确搜索成功, query: '%s', 返回 %d 条结果", query, len(results))
	respondOK(c, results)
}

// SearchQuestionsFuzzy 处理模糊搜索请求：GET /question/search-fuzzy?query=...
// 零命中映射为 404，以便前端区分"没有匹配"与"搜索失败"。
func (h *SearchHandler) SearchQuestionsFuzzy(c *gin.Context) {
	query := c.Query("query")
	log.Infof("[SearchHandler] 收到模糊搜索请求, query: '%s'", query)

	results, err := h.searchService.SearchQuestionsFuzzy(c.Request.Context(), query)
	if err != nil {
		log.Warnf("[SearchHandler] 模糊搜索未返回结果, query: '%s', error: %v", query, err)
		respondError(c, err)
		return
	}

	log.Infof("[SearchHandler] 模糊搜索成功, query: '%s', 返回 %d 条命中", query, len(results))
	respondOK(c, results)
}
