// Package repository 包含了所有与数据库交互的逻辑。
package repository

import (
	"context"
	"strings"

	"hotline-faq-go/internal/model"

	"gorm.io/gorm"
)

// QuestionRepository 接口定义了问题与子问题的数据操作方法。
// 所有读操作都接受 context，随调用方请求一起取消。
type QuestionRepository interface {
	FindAll(ctx context.Context) ([]model.Question, error)
	FindRoots(ctx context.Context) ([]model.Question, error)
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	SearchByText(ctx context.Context, query string) ([]model.Question, error)

	FindSubQuestions(ctx context.Context, parentQuestionID uint) ([]model.SubQuestion, error)
	FindSubQuestionByID(ctx context.Context, id uint) (*model.SubQuestion, error)
	CountSubQuestions(ctx context.Context, parentQuestionID uint) (int64, error)
	CountNestedSubQuestions(ctx context.Context, parentSubQuestionID uint) (int64, error)

	FindCategoryByID(ctx context.Context, id uint) (*model.Category, error)

	Create(ctx context.Context, question *model.Question) error
	CreateSubQuestion(ctx context.Context, sub *model.SubQuestion) error
	Save(ctx context.Context, question *model.Question) error
	SaveSubQuestion(ctx context.Context, sub *model.SubQuestion) error
	Delete(ctx context.Context, id uint) error
	DeleteSubQuestion(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository 创建一个新的 QuestionRepository 实例。
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindAll 检索所有问题记录，模糊搜索用它构建候选映射。
func (r *questionRepository) FindAll(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).Find(&questions).Error
	return questions, err
}

// FindRoots 检索所有顶层问题（parent_question_id 为 NULL）。
func (r *questionRepository) FindRoots(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).Where("parent_question_id IS NULL").Find(&questions).Error
	return questions, err
}

// FindByID 根据 ID 查找一个问题。
func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// SearchByText 对问题正文和答案做不区分大小写的子串匹配，结果按存储顺序返回。
func (r *questionRepository) SearchByText(ctx context.Context, query string) ([]model.Question, error) {
	var questions []model.Question
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(text) LIKE ? OR LOWER(answer) LIKE ?", pattern, pattern).
		Find(&questions).Error
	return questions, err
}

// FindSubQuestions 检索某个顶层问题名下的全部子问题（平铺列表，不含层级）。
func (r *questionRepository) FindSubQuestions(ctx context.Context, parentQuestionID uint) ([]model.SubQuestion, error) {
	var subs []model.SubQuestion
	err := r.db.WithContext(ctx).
		Where("parent_question_id = ?", parentQuestionID).
		Find(&subs).Error
	return subs, err
}

// FindSubQuestionByID 根据 ID 查找一个子问题。
func (r *questionRepository) FindSubQuestionByID(ctx context.Context, id uint) (*model.SubQuestion, error) {
	var sub model.SubQuestion
	if err := r.db.WithContext(ctx).First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// CountSubQuestions 统计某个顶层问题名下的子问题数量。
func (r *questionRepository) CountSubQuestions(ctx context.Context, parentQuestionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SubQuestion{}).
		Where("parent_question_id = ?", parentQuestionID).
		Count(&count).Error
	return count, err
}

// CountNestedSubQuestions 统计嵌套在某个子问题之下的子问题数量。
func (r *questionRepository) CountNestedSubQuestions(ctx context.Context, parentSubQuestionID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.SubQuestion{}).
		Where("parent_subquestion_id = ?", parentSubQuestionID).
		Count(&count).Error
	return count, err
}

// FindCategoryByID 根据 ID 查找分类，创建问题时做外键校验。
func (r *questionRepository) FindCategoryByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Create 插入一条新的问题记录。
func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// CreateSubQuestion 插入一条新的子问题记录。
func (r *questionRepository) CreateSubQuestion(ctx context.Context, sub *model.SubQuestion) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// Save 保存一个已存在的问题记录。
func (r *questionRepository) Save(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Save(question).Error
}

// SaveSubQuestion 保存一个已存在的子问题记录。
func (r *questionRepository) SaveSubQuestion(ctx context.Context, sub *model.SubQuestion) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// Delete 根据 ID 删除一个问题记录。
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}

// DeleteSubQuestion 根据 ID 删除一个子问题记录。
func (r *questionRepository) DeleteSubQuestion(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SubQuestion{}, id).Error
}
