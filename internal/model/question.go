// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// Category 对应于数据库中的 'categories' 表。
// 分类的增删改由外部管理端负责，本服务只读取它做外键校验。
type Category struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	ParentID *uint   `gorm:"default:null" json:"parent_id"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Category) TableName() string {
	return "categories"
}

// Question 对应于数据库中的 'questions' 表，是热线问答的顶层条目。
type Question struct {
	// ID 是问题的唯一标识符，作为主键。
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`
	// Text 是问题正文。
	Text string `gorm:"type:text;not null" json:"text"`
	// Answer 是问题的答案，允许为空（尚未解答的问题）。
	Answer *string `gorm:"type:text" json:"answer"`
	// Author 记录创建者，AuthorEdit 记录最后一次编辑者。
	Author     string  `gorm:"type:varchar(255)" json:"author"`
	AuthorEdit *string `gorm:"type:varchar(255)" json:"author_edit"`
	// CategoryID 是所属分类，SubcategoryID 可选。
	CategoryID    uint  `gorm:"not null;index" json:"category_id"`
	SubcategoryID *uint `gorm:"default:null" json:"subcategory_id"`
	// ParentQuestionID 自引用。顶层问题该字段为 NULL。
	ParentQuestionID *uint `gorm:"default:null" json:"parent_question_id"`
	// Number 是展示编号，创建后被赋值为自身 ID。
	Number int `gorm:"default:0" json:"number"`
	// Depth 顶层问题恒为 0。
	Depth     int       `gorm:"default:0" json:"depth"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Question) TableName() string {
	return "questions"
}

// SubQuestion 对应于数据库中的 'sub_questions' 表。
// 每个子问题必须属于一个顶层问题（ParentQuestionID），
// 并可以嵌套在另一个子问题之下（ParentSubQuestionID），构成一棵森林。
type SubQuestion struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Text   string  `gorm:"type:text;not null" json:"text"`
	Answer *string `gorm:"type:text" json:"answer"`
	Author string  `gorm:"type:varchar(255)" json:"author"`
	// ParentQuestionID 指向所属的顶层问题，必填。
	ParentQuestionID uint `gorm:"not null;index" json:"parent_question_id"`
	// ParentSubQuestionID 指向父级子问题，NULL 表示直接挂在顶层问题下。
	ParentSubQuestionID *uint `gorm:"column:parent_subquestion_id;default:null;index" json:"parent_subquestion_id"`
	CategoryID          uint  `gorm:"not null" json:"category_id"`
	SubcategoryID       *uint `gorm:"default:null" json:"subcategory_id"`
	Number              int   `gorm:"default:0" json:"number"`
	// Depth 等于父级子问题的 Depth + 1；直接挂在顶层问题下时为 1。
	Depth     int       `gorm:"default:1" json:"depth"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (SubQuestion) TableName() string {
	return "sub_questions"
}

// Searchable 是搜索子系统对条目的最小能力要求。
// Question 与 SubQuestion 都实现它，响应组装只面向该能力而不做具体类型分支。
type Searchable interface {
	GetID() uint
	GetText() string
	GetAnswer() string
	ParentRef() *uint
}

// GetID 返回问题 ID。
func (q Question) GetID() uint { return q.ID }

// GetText 返回问题正文。
func (q Question) GetText() string { return q.Text }

// GetAnswer 返回答案文本，未解答时为空串。
func (q Question) GetAnswer() string {
	if q.Answer == nil {
		return ""
	}
	return *q.Answer
}

// ParentRef 返回父问题引用，顶层问题为 nil。
func (q Question) ParentRef() *uint { return q.ParentQuestionID }

// GetID 返回子问题 ID。
func (s SubQuestion) GetID() uint { return s.ID }

// GetText 返回子问题正文。
func (s SubQuestion) GetText() string { return s.Text }

// GetAnswer 返回答案文本，未解答时为空串。
func (s SubQuestion) GetAnswer() string {
	if s.Answer == nil {
		return ""
	}
	return *s.Answer
}

// ParentRef 返回父级子问题引用，根级子问题为 nil。
func (s SubQuestion) ParentRef() *uint { return s.ParentSubQuestionID }
