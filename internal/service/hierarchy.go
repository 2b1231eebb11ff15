package service

import "hotline-faq-go/internal/model"

// buildSubQuestionTree 把平铺的子问题列表组装成森林。
// 两趟遍历：先按 ID 建节点索引，再按存储顺序把每个节点挂到父节点的
// Children 下，ParentSubQuestionID 为 NULL 的节点收进根列表。
// 不使用递归，因此父引用成环的数据不会让构建过程挂起；
// 父节点不在列表中的孤儿节点和环上的节点不会出现在结果里。
func buildSubQuestionTree(subs []model.SubQuestion) []*model.SubQuestionNode {
	nodes := make(map[uint]*model.SubQuestionNode, len(subs))
	for _, sub := range subs {
		nodes[sub.ID] = &model.SubQuestionNode{
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
		}
	}

	roots := make([]*model.SubQuestionNode, 0)
	for _, sub := range subs {
		node := nodes[sub.ID]
		if sub.ParentSubQuestionID != nil {
			if parent, ok := nodes[*sub.ParentSubQuestionID]; ok {
				parent.Children = append(parent.Children, node)
			}
		} else {
			roots = append(roots, node)
		}
	}
	return roots
}
