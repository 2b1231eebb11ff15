package service

import (
	"testing"

	"hotline-faq-go/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubQuestionTree_Forest(t *testing.T) {
	subs := []model.SubQuestion{
		{ID: 1, Text: "корень 1", ParentQuestionID: 10, Depth: 1},
		{ID: 2, Text: "корень 2", ParentQuestionID: 10, Depth: 1},
		{ID: 3, Text: "потомок 1", ParentQuestionID: 10, ParentSubQuestionID: uintPtr(1), Depth: 2},
		{ID: 4, Text: "потомок 2", ParentQuestionID: 10, ParentSubQuestionID: uintPtr(1), Depth: 2},
		{ID: 5, Text: "внук", ParentQuestionID: 10, ParentSubQuestionID: uintPtr(3), Depth: 3},
	}

	roots := buildSubQuestionTree(subs)
	require.Len(t, roots, 2)

	// 每个输入条目必须恰好在森林中出现一次
	total := 0
	var walk func(nodes []*model.SubQuestionNode)
	walk = func(nodes []*model.SubQuestionNode) {
		for _, n := range nodes {
			total++
			walk(n.Children)
		}
	}
	walk(roots)
	assert.Equal(t, len(subs), total)

	assert.Equal(t, uint(1), roots[0].ID)
	require.Len(t, roots[0].Children, 2)
	assert.Equal(t, uint(3), roots[0].Children[0].ID)
	require.Len(t, roots[0].Children[0].Children, 1)
	assert.Equal(t, uint(5), roots[0].Children[0].Children[0].ID)
}

func TestBuildSubQuestionTree_TwoLevelChain(t *testing.T) {
	// 两条记录构成长度为 2 的父子链：结果是一个根带一个孩子，而不是两个平级节点
	subs := []model.SubQuestion{
		{ID: 1, Text: "родитель", ParentQuestionID: 7, Depth: 1},
		{ID: 2, Text: "вложенный", ParentQuestionID: 7, ParentSubQuestionID: uintPtr(1), Depth: 2},
	}

	roots := buildSubQuestionTree(subs)
	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, uint(2), roots[0].Children[0].ID)
	assert.Empty(t, roots[0].Children[0].Children)
}

func TestBuildSubQuestionTree_OrphanDropped(t *testing.T) {
	// 父引用指向不存在的 ID 的孤儿节点被静默丢弃
	subs := []model.SubQuestion{
		{ID: 1, Text: "корень", ParentQuestionID: 7, Depth: 1},
		{ID: 2, Text: "сирота", ParentQuestionID: 7, ParentSubQuestionID: uintPtr(99), Depth: 2},
	}

	roots := buildSubQuestionTree(subs)
	require.Len(t, roots, 1)
	assert.Equal(t, uint(1), roots[0].ID)
	assert.Empty(t, roots[0].Children)
}

func TestBuildSubQuestionTree_CycleDoesNotHang(t *testing.T) {
	// 成环的父引用不会让构建挂起，环上的节点不会出现在结果里
	subs := []model.SubQuestion{
		{ID: 1, Text: "a", ParentQuestionID: 7, ParentSubQuestionID: uintPtr(2)},
		{ID: 2, Text: "b", ParentQuestionID: 7, ParentSubQuestionID: uintPtr(1)},
		{ID: 3, Text: "нормальный корень", ParentQuestionID: 7},
	}

	roots := buildSubQuestionTree(subs)
	require.Len(t, roots, 1)
	assert.Equal(t, uint(3), roots[0].ID)
}

func TestBuildSubQuestionTree_Empty(t *testing.T) {
	roots := buildSubQuestionTree(nil)
	assert.NotNil(t, roots)
	assert.Empty(t, roots)
}
