package service

import (
	"context"
	"testing"

	"hotline-faq-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuestionFixture() (*fakeQuestionRepo, *fakeHitRepo, QuestionService) {
	repo := newFakeQuestionRepo()
	hits := newFakeHitRepo()
	repo.categories = []model.Category{{ID: 1, Name: "Доступ"}}
	return repo, hits, NewQuestionService(repo, hits)
}

func TestCreateQuestion_AssignsNumberFromID(t *testing.T) {
	_, _, svc := newQuestionFixture()

	resp, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Text:       "Как восстановить пароль?",
		Answer:     strPtr("Перейдите по ссылке в письме"),
		Author:     "admin",
		CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int(resp.ID), resp.Number)
	assert.Equal(t, 0, resp.Depth)
	assert.Nil(t, resp.ParentQuestionID)
}

func TestCreateQuestion_UnknownCategory(t *testing.T) {
	_, _, svc := newQuestionFixture()

	_, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Text:       "вопрос",
		CategoryID: 42,
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCreateSubQuestion_DepthInvariant(t *testing.T) {
	repo, _, svc := newQuestionFixture()

	parent, err := svc.CreateQuestion(context.Background(), CreateQuestionInput{
		Text:       "Основной вопрос",
		CategoryID: 1,
	})
	require.NoError(t, err)

	// 直接挂在顶层问题下的子问题深度为 1
	first, err := svc.CreateSubQuestion(context.Background(), CreateQuestionInput{
		Text:             "Уточнение",
		ParentQuestionID: uintPtr(parent.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Depth)
	assert.Equal(t, int(first.ID), first.Number)
	// 分类继承自顶层问题
	assert.Equal(t, parent.CategoryID, first.CategoryID)

	// 嵌套子问题的深度等于父级子问题深度加一
	second, err := svc.CreateSubQuestion(context.Background(), CreateQuestionInput{
		Text:                "Ещё глубже",
		ParentQuestionID:    uintPtr(parent.ID),
		ParentSubQuestionID: uintPtr(first.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Depth)

	subs, err := repo.FindSubQuestions(context.Background(), parent.ID)
	require.NoError(t, err)
	assert.Len(t, subs, 2)
}

func TestCreateSubQuestion_MissingParent(t *testing.T) {
	_, _, svc := newQuestionFixture()

	_, err := svc.CreateSubQuestion(context.Background(), CreateQuestionInput{
		Text:             "без родителя",
		ParentQuestionID: uintPtr(99),
	})
	assert.ErrorIs(t, err, ErrParentQuestionNotFound)

	_, err = svc.CreateSubQuestion(context.Background(), CreateQuestionInput{Text: "nil родитель"})
	assert.ErrorIs(t, err, ErrParentQuestionNotFound)
}

func TestGetQuestionByID_IncrementsHitCounter(t *testing.T) {
	repo, hits, svc := newQuestionFixture()
	repo.questions = append(repo.questions, model.Question{ID: 1, Text: "вопрос", CategoryID: 1})

	resp, err := svc.GetQuestionByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Count)

	resp, err = svc.GetQuestionByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Count)
	assert.Equal(t, int64(2), hits.counts[1])
}

func TestGetQuestionByID_NotFound(t *testing.T) {
	_, _, svc := newQuestionFixture()

	_, err := svc.GetQuestionByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestDeleteQuestion_RefusesWhenSubQuestionsExist(t *testing.T) {
	repo, _, svc := newQuestionFixture()
	repo.questions = append(repo.questions, model.Question{ID: 1, Text: "вопрос", CategoryID: 1})
	repo.subs = append(repo.subs, model.SubQuestion{ID: 2, Text: "уточнение", ParentQuestionID: 1, Depth: 1})

	err := svc.DeleteQuestion(context.Background(), 1, 0)
	assert.ErrorIs(t, err, ErrSubQuestionHasChildren)

	// 先删叶子子问题，再删问题本身
	require.NoError(t, svc.DeleteQuestion(context.Background(), 1, 2))
	require.NoError(t, svc.DeleteQuestion(context.Background(), 1, 0))
	assert.Empty(t, repo.questions)
}

func TestDeleteSubQuestion_Guards(t *testing.T) {
	repo, _, svc := newQuestionFixture()
	repo.questions = append(repo.questions, model.Question{ID: 1, Text: "вопрос", CategoryID: 1})
	repo.subs = []model.SubQuestion{
		{ID: 2, Text: "родитель", ParentQuestionID: 1, Depth: 1},
		{ID: 3, Text: "вложенный", ParentQuestionID: 1, ParentSubQuestionID: uintPtr(2), Depth: 2},
	}

	// 下面还挂着嵌套子问题
	err := svc.DeleteQuestion(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrSubQuestionHasChildren)

	// 子问题不属于指定的顶层问题
	err = svc.DeleteQuestion(context.Background(), 99, 3)
	assert.ErrorIs(t, err, ErrSubQuestionWrongParent)

	// 不存在的子问题
	err = svc.DeleteQuestion(context.Background(), 1, 77)
	assert.ErrorIs(t, err, ErrSubQuestionNotFound)
}

func TestUpdateQuestion(t *testing.T) {
	repo, _, svc := newQuestionFixture()
	repo.questions = append(repo.questions, model.Question{ID: 1, Text: "старый текст", CategoryID: 1})

	err := svc.UpdateQuestion(context.Background(), UpdateQuestionInput{
		QuestionID: 1,
		Text:       strPtr("новый текст"),
		Answer:     strPtr("новый ответ"),
		AuthorEdit: "moderator",
	})
	require.NoError(t, err)

	updated, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "новый текст", updated.Text)
	assert.Equal(t, "новый ответ", *updated.Answer)
	assert.Equal(t, "moderator", *updated.AuthorEdit)
}

func TestUpdateSubQuestion_WrongParent(t *testing.T) {
	repo, _, svc := newQuestionFixture()
	repo.subs = append(repo.subs, model.SubQuestion{ID: 2, Text: "уточнение", ParentQuestionID: 1, Depth: 1})

	err := svc.UpdateQuestion(context.Background(), UpdateQuestionInput{
		QuestionID:    99,
		SubQuestionID: 2,
		Text:          strPtr("не пройдёт"),
	})
	assert.ErrorIs(t, err, ErrSubQuestionWrongParent)
}

func TestTopQuestionCounts(t *testing.T) {
	repo, hits, svc := newQuestionFixture()
	repo.questions = []model.Question{
		{ID: 1, Text: "первый", CategoryID: 1},
		{ID: 2, Text: "второй", CategoryID: 1},
		{ID: 3, Text: "вложенный", CategoryID: 1, ParentQuestionID: uintPtr(1)},
	}
	hits.counts[1] = 7

	stats, err := svc.TopQuestionCounts(context.Background())
	require.NoError(t, err)
	// 只统计顶层问题
	require.Len(t, stats, 2)
	assert.Equal(t, int64(7), stats[0].Count)
	assert.Equal(t, int64(0), stats[1].Count)
}
