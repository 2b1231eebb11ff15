package model

import (
	"time"

	"hotline-faq-go/pkg/textmatch"
)

// SubQuestionNode 是子问题层级树中的一个节点。
// Children 按存储顺序保存嵌套的子问题。
type SubQuestionNode struct {
	ID                  uint               `json:"id"`
	Text                string             `json:"text"`
	Answer              *string            `json:"answer"`
	Author              string             `json:"author"`
	ParentQuestionID    uint               `json:"parent_question_id"`
	ParentSubQuestionID *uint              `json:"parent_subquestion_id"`
	CategoryID          uint               `json:"category_id"`
	SubcategoryID       *uint              `json:"subcategory_id"`
	Number              int                `json:"number"`
	Depth               int                `json:"depth"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
	Children            []*SubQuestionNode `json:"sub_questions"`
}

// QuestionResponse 是问题查询接口的完整响应，携带嵌套的子问题树。
type QuestionResponse struct {
	ID               uint               `json:"id"`
	Text             string             `json:"text"`
	Answer           *string            `json:"answer"`
	Author           string             `json:"author"`
	AuthorEdit       *string            `json:"author_edit"`
	CategoryID       uint               `json:"category_id"`
	SubcategoryID    *uint              `json:"subcategory_id"`
	ParentQuestionID *uint              `json:"parent_question_id"`
	Number           int                `json:"number"`
	Depth            int                `json:"depth"`
	Count            int64              `json:"count"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	SubQuestions     []*SubQuestionNode `json:"sub_questions"`
}

// SearchHit 是模糊搜索的一条命中结果（派生数据，不落库）。
// MatchPercentage 为 0-100 的相似度得分，MatchPositions 供前端高亮命中片段。
type SearchHit struct {
	ID              uint                      `json:"id"`
	Text            string                    `json:"text"`
	Answer          *string                   `json:"answer"`
	MatchPercentage int                       `json:"match_percentage"`
	MatchPositions  []textmatch.MatchPosition `json:"match_positions"`
	Author          string                    `json:"author"`
	AuthorEdit      *string                   `json:"author_edit"`
	CategoryID      uint                      `json:"category_id"`
	SubcategoryID   *uint                     `json:"subcategory_id"`
	Number          int                       `json:"number"`
	Depth           int                       `json:"depth"`
	Count           int64                     `json:"count"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
	SubQuestions    []*SubQuestionNode        `json:"sub_questions"`
}

// TopQuestionCount 是仪表盘统计中的一条顶层问题记录。
type TopQuestionCount struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Count int64  `json:"count"`
}
