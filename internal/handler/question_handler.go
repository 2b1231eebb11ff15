package handler

import (
	"net/http"

	"hotline-faq-go/internal/service"
	"hotline-faq-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// QuestionHandler 结构体定义了问答条目维护相关的处理器。
type QuestionHandler struct {
	questionService service.QuestionService
}

// NewQuestionHandler 创建一个新的 QuestionHandler 实例。
func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
	}
}

// GetQuestions 处理获取全部顶层问题的请求：GET /question/all-questions
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.questionService.GetQuestions(c.Request.Context())
	if err != nil {
		log.Errorf("[QuestionHandler] 获取问题列表失败, error: %v", err)
		respondError(c, err)
		return
	}
	respondOK(c, questions)
}

// questionByIDRequest 是按 ID 查询问题的请求体。
type questionByIDRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
}

// GetQuestionByID 处理按 ID 查询问题的请求：POST /question/question_by_id
func (h *QuestionHandler) GetQuestionByID(c *gin.Context) {
	var req questionByIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求中缺少 question_id"})
		return
	}

	question, err := h.questionService.GetQuestionByID(c.Request.Context(), req.QuestionID)
	if err != nil {
		log.Warnf("[QuestionHandler] 获取问题失败, id: %d, error: %v", req.QuestionID, err)
		respondError(c, err)
		return
	}
	respondOK(c, question)
}

// createQuestionRequest 是创建问题或子问题的请求体。
type createQuestionRequest struct {
	Text                string  `json:"text" binding:"required"`
	Answer              *string `json:"answer"`
	Author              string  `json:"author"`
	CategoryID          uint    `json:"category_id"`
	SubcategoryID       *uint   `json:"subcategory_id"`
	IsSubQuestion       bool    `json:"is_subquestion"`
	ParentQuestionID    *uint   `json:"parent_question_id"`
	ParentSubQuestionID *uint   `json:"parent_subquestion_id"`
}

// CreateQuestion 处理创建问题或子问题的请求：POST /question/create
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	in := service.CreateQuestionInput{
		Text:                req.Text,
		Answer:              req.Answer,
		Author:              req.Author,
		CategoryID:          req.CategoryID,
		SubcategoryID:       req.SubcategoryID,
		IsSubQuestion:       req.IsSubQuestion,
		ParentQuestionID:    req.ParentQuestionID,
		ParentSubQuestionID: req.ParentSubQuestionID,
	}

	if req.IsSubQuestion {
		if req.ParentQuestionID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "创建子问题必须指定 parent_question_id"})
			return
		}
		sub, err := h.questionService.CreateSubQuestion(c.Request.Context(), in)
		if err != nil {
			log.Warnf("[QuestionHandler] 创建子问题失败, error: %v", err)
			respondError(c, err)
			return
		}
		respondOK(c, sub)
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), in)
	if err != nil {
		log.Warnf("[QuestionHandler] 创建问题失败, error: %v", err)
		respondError(c, err)
		return
	}
	respondOK(c, question)
}

// updateQuestionRequest 是更新问题或子问题的请求体。
type updateQuestionRequest struct {
	QuestionID    uint    `json:"question_id" binding:"required"`
	SubQuestionID uint    `json:"sub_question_id"`
	Text          *string `json:"text"`
	Answer        *string `json:"answer"`
	AuthorEdit    string  `json:"author_edit"`
}

// UpdateQuestion 处理更新问题或子问题的请求：POST /question/update
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	err := h.questionService.UpdateQuestion(c.Request.Context(), service.UpdateQuestionInput{
		QuestionID:    req.QuestionID,
		SubQuestionID: req.SubQuestionID,
		Text:          req.Text,
		Answer:        req.Answer,
		AuthorEdit:    req.AuthorEdit,
	})
	if err != nil {
		log.Warnf("[QuestionHandler] 更新问题失败, questionID: %d, subQuestionID: %d, error: %v", req.QuestionID, req.SubQuestionID, err)
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"updated": true})
}

// deleteQuestionRequest 是删除问题或子问题的请求体。
// SubQuestionID 大于 0 时删除子问题，否则删除 QuestionID 指定的顶层问题。
type deleteQuestionRequest struct {
	QuestionID    uint `json:"question_id" binding:"required"`
	SubQuestionID uint `json:"sub_question_id"`
}

// DeleteQuestion 处理删除问题或子问题的请求：POST /question/delete
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	var req deleteQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), req.QuestionID, req.SubQuestionID); err != nil {
		log.Warnf("[QuestionHandler] 删除问题失败, questionID: %d, subQuestionID: %d, error: %v", req.QuestionID, req.SubQuestionID, err)
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"deleted": true})
}

// TopQuestionCounts 处理仪表盘统计请求：GET /question/top_question_count
func (h *QuestionHandler) TopQuestionCounts(c *gin.Context) {
	stats, err := h.questionService.TopQuestionCounts(c.Request.Context())
	if err != nil {
		log.Errorf("[QuestionHandler] 获取问题统计失败, error: %v", err)
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{
		"top_questions_count": len(stats),
		"questions":           stats,
	})
}
