package service

import (
	"context"
	"errors"
	"fmt"

	"hotline-faq-go/internal/model"
	"hotline-faq-go/internal/repository"
	"hotline-faq-go/pkg/log"

	"gorm.io/gorm"
)

// CreateQuestionInput 聚合创建问题或子问题所需的字段。
type CreateQuestionInput struct {
	Text          string
	Answer        *string
	Author        string
	CategoryID    uint
	SubcategoryID *uint
	// IsSubQuestion 为 true 时按子问题创建，必须给出 ParentQuestionID。
	IsSubQuestion       bool
	ParentQuestionID    *uint
	ParentSubQuestionID *uint
}

// UpdateQuestionInput 聚合更新问题或子问题所需的字段。
// SubQuestionID 大于 0 时更新子问题，否则更新 QuestionID 指定的顶层问题。
type UpdateQuestionInput struct {
	QuestionID    uint
	SubQuestionID uint
	Text          *string
	Answer        *string
	AuthorEdit    string
}

// QuestionService 接口定义了问答条目的查询与维护操作。
type QuestionService interface {
	GetQuestions(ctx context.Context) ([]model.QuestionResponse, error)
	GetQuestionByID(ctx context.Context, id uint) (*model.QuestionResponse, error)
	CreateQuestion(ctx context.Context, in CreateQuestionInput) (*model.QuestionResponse, error)
	CreateSubQuestion(ctx context.Context, in CreateQuestionInput) (*model.SubQuestionNode, error)
	UpdateQuestion(ctx context.Context, in UpdateQuestionInput) error
	DeleteQuestion(ctx context.Context, questionID, subQuestionID uint) error
	TopQuestionCounts(ctx context.Context) ([]model.TopQuestionCount, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	hitRepo      repository.HitCounterRepository
}

// NewQuestionService 创建一个新的 QuestionService 实例。
func NewQuestionService(questionRepo repository.QuestionRepository, hitRepo repository.HitCounterRepository) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		hitRepo:      hitRepo,
	}
}

// GetQuestions 返回所有顶层问题，每条带上完整的子问题树。
func (s *questionService) GetQuestions(ctx context.Context) ([]model.QuestionResponse, error) {
	questions, err := s.questionRepo.FindRoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取问题列表失败: %w", err)
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	counts, err := s.hitRepo.GetBatch(ctx, ids)
	if err != nil {
		log.Warnf("[QuestionService] 批量读取点击计数失败, err: %v", err)
		counts = map[uint]int64{}
	}

	responses := make([]model.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		subs, err := s.questionRepo.FindSubQuestions(ctx, question.ID)
		if err != nil {
			return nil, fmt.Errorf("读取子问题失败: %w", err)
		}
		responses = append(responses, s.toResponse(question, counts[question.ID], buildSubQuestionTree(subs)))
	}
	return responses, nil
}

// GetQuestionByID 返回单个问题及其子问题树，并把点击计数加一。
func (s *questionService) GetQuestionByID(ctx context.Context, id uint) (*model.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("读取问题失败: %w", err)
	}

	count, err := s.hitRepo.Increment(ctx, id)
	if err != nil {
		// 计数失败不影响问题本身的返回
		log.Warnf("[QuestionService] 点击计数自增失败, questionID: %d, err: %v", id, err)
	}

	subs, err := s.questionRepo.FindSubQuestions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("读取子问题失败: %w", err)
	}

	resp := s.toResponse(*question, count, buildSubQuestionTree(subs))
	return &resp, nil
}

// CreateQuestion 创建一个顶层问题。分类必须已存在，创建后把展示编号赋为自身 ID。
func (s *questionService) CreateQuestion(ctx context.Context, in CreateQuestionInput) (*model.QuestionResponse, error) {
	if _, err := s.questionRepo.FindCategoryByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("校验分类失败: %w", err)
	}

	question := &model.Question{
		Text:          in.Text,
		Answer:        in.Answer,
		Author:        in.Author,
		CategoryID:    in.CategoryID,
		SubcategoryID: in.SubcategoryID,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("创建问题失败: %w", err)
	}

	// 展示编号跟随 ID，插入拿到 ID 之后回写一次
	question.Number = int(question.ID)
	if err := s.questionRepo.Save(ctx, question); err != nil {
		return nil, fmt.Errorf("回写问题编号失败: %w", err)
	}

	log.Infof("[QuestionService] 创建问题成功, id: %d, author: %s", question.ID, question.Author)
	resp := s.toResponse(*question, 0, []*model.SubQuestionNode{})
	return &resp, nil
}

// CreateSubQuestion 创建一个子问题。
// 深度等于父级子问题深度加一，直接挂在顶层问题下时为 1；分类继承自顶层问题。
func (s *questionService) CreateSubQuestion(ctx context.Context, in CreateQuestionInput) (*model.SubQuestionNode, error) {
	if in.ParentQuestionID == nil {
		return nil, ErrParentQuestionNotFound
	}

	parent, err := s.questionRepo.FindByID(ctx, *in.ParentQuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParentQuestionNotFound
		}
		return nil, fmt.Errorf("读取父问题失败: %w", err)
	}

	depth := 1
	if in.ParentSubQuestionID != nil {
		parentSub, err := s.questionRepo.FindSubQuestionByID(ctx, *in.ParentSubQuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentSubQuestionNotFound
			}
			return nil, fmt.Errorf("读取父级子问题失败: %w", err)
		}
		if parentSub.ParentQuestionID != parent.ID {
			return nil, ErrSubQuestionWrongParent
		}
		depth = parentSub.Depth + 1
	}

	sub := &model.SubQuestion{
		Text:                in.Text,
		Answer:              in.Answer,
		Author:              in.Author,
		ParentQuestionID:    parent.ID,
		ParentSubQuestionID: in.ParentSubQuestionID,
		CategoryID:          parent.CategoryID,
		SubcategoryID:       parent.SubcategoryID,
		Depth:               depth,
	}
	if err := s.questionRepo.CreateSubQuestion(ctx, sub); err != nil {
		return nil, fmt.Errorf("创建子问题失败: %w", err)
	}

	sub.Number = int(sub.ID)
	if err := s.questionRepo.SaveSubQuestion(ctx, sub); err != nil {
		return nil, fmt.Errorf("回写子问题编号失败: %w", err)
	}

	log.Infof("[QuestionService] 创建子问题成功, id: %d, parentQuestionID: %d, depth: %d", sub.ID, sub.ParentQuestionID, sub.Depth)
	return &model.SubQuestionNode{
		ID:                  sub.ID,
		Text:                sub.Text,
		Answer:              sub.Answer,
		Author:              sub.Author,
		ParentQuestionID:    sub.ParentQuestionID,
		ParentSubQuestionID: sub.ParentSubQuestionID,
		CategoryID:          sub.CategoryID,
		SubcategoryID:       sub.SubcategoryID,
		Number:              sub.Number,
		Depth:               sub.Depth,
		CreatedAt:           sub.CreatedAt,
		UpdatedAt:           sub.UpdatedAt,
		Children:            []*model.SubQuestionNode{},
	}, nil
}

// UpdateQuestion 更新问题或子问题的正文与答案。
func (s *questionService) UpdateQuestion(ctx context.Context, in UpdateQuestionInput) error {
	if in.SubQuestionID > 0 {
		sub, err := s.questionRepo.FindSubQuestionByID(ctx, in.SubQuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubQuestionNotFound
			}
			return fmt.Errorf("读取子问题失败: %w", err)
		}
		if sub.ParentQuestionID != in.QuestionID {
			return ErrSubQuestionWrongParent
		}
		if in.Text != nil {
			sub.Text = *in.Text
		}
		if in.Answer != nil {
			sub.Answer = in.Answer
		}
		if err := s.questionRepo.SaveSubQuestion(ctx, sub); err != nil {
			return fmt.Errorf("更新子问题失败: %w", err)
		}
		return nil
	}

	question, err := s.questionRepo.FindByID(ctx, in.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("读取问题失败: %w", err)
	}
	if in.Text != nil {
		question.Text = *in.Text
	}
	if in.Answer != nil {
		question.Answer = in.Answer
	}
	if in.AuthorEdit != "" {
		question.AuthorEdit = &in.AuthorEdit
	}
	if err := s.questionRepo.Save(ctx, question); err != nil {
		return fmt.Errorf("更新问题失败: %w", err)
	}
	return nil
}

// DeleteQuestion 删除问题或子问题。
// subQuestionID 大于 0 时删除子问题，否则删除 questionID 指定的顶层问题。
// 名下还挂着子问题的节点不允许删除。
func (s *questionService) DeleteQuestion(ctx context.Context, questionID, subQuestionID uint) error {
	if subQuestionID > 0 {
		sub, err := s.questionRepo.FindSubQuestionByID(ctx, subQuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubQuestionNotFound
			}
			return fmt.Errorf("读取子问题失败: %w", err)
		}
		if sub.ParentQuestionID != questionID {
			return ErrSubQuestionWrongParent
		}
		nested, err := s.questionRepo.CountNestedSubQuestions(ctx, subQuestionID)
		if err != nil {
			return fmt.Errorf("统计嵌套子问题失败: %w", err)
		}
		if nested > 0 {
			return ErrSubQuestionHasChildren
		}
		if err := s.questionRepo.DeleteSubQuestion(ctx, subQuestionID); err != nil {
			return fmt.Errorf("删除子问题失败: %w", err)
		}
		log.Infof("[QuestionService] 删除子问题成功, id: %d", subQuestionID)
		return nil
	}

	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("读取问题失败: %w", err)
	}
	subCount, err := s.questionRepo.CountSubQuestions(ctx, questionID)
	if err != nil {
		return fmt.Errorf("统计子问题失败: %w", err)
	}
	if subCount > 0 {
		return ErrSubQuestionHasChildren
	}
	if err := s.questionRepo.Delete(ctx, questionID); err != nil {
		return fmt.Errorf("删除问题失败: %w", err)
	}
	log.Infof("[QuestionService] 删除问题成功, id: %d", questionID)
	return nil
}

// TopQuestionCounts 返回所有顶层问题及其点击计数，供仪表盘展示。
func (s *questionService) TopQuestionCounts(ctx context.Context) ([]model.TopQuestionCount, error) {
	questions, err := s.questionRepo.FindRoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取问题列表失败: %w", err)
	}

	ids := make([]uint, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	counts, err := s.hitRepo.GetBatch(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("批量读取点击计数失败: %w", err)
	}

	stats := make([]model.TopQuestionCount, 0, len(questions))
	for _, q := range questions {
		stats = append(stats, model.TopQuestionCount{
			ID:    q.ID,
			Text:  q.Text,
			Count: counts[q.ID],
		})
	}
	return stats, nil
}

// toResponse 把问题模型转换为响应 DTO。
func (s *questionService) toResponse(question model.Question, count int64, subs []*model.SubQuestionNode) model.QuestionResponse {
	return model.QuestionResponse{
		ID:               question.ID,
		Text:             question.Text,
		Answer:           question.Answer,
		Author:           question.Author,
		AuthorEdit:       question.AuthorEdit,
		CategoryID:       question.CategoryID,
		SubcategoryID:    question.SubcategoryID,
		ParentQuestionID: question.ParentQuestionID,
		Number:           question.Number,
		Depth:            question.Depth,
		Count:            count,
		CreatedAt:        question.CreatedAt,
		UpdatedAt:        question.UpdatedAt,
		SubQuestions:     subs,
	}
}
