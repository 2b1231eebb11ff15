// Package service 提供了问答与搜索相关的业务逻辑。
package service

import (
	"context"
	"fmt"
	"sort"

	"hotline-faq-go/internal/model"
	"hotline-faq-go/internal/repository"
	"hotline-faq-go/pkg/log"
	"hotline-faq-go/pkg/textmatch"
)

// QuestionSearchService 接口定义了问题搜索操作。
type QuestionSearchService interface {
	// SearchQuestions 精确搜索：不区分大小写的子串匹配，无排名，空结果是合法的空列表。
	SearchQuestions(ctx context.Context, query string) ([]model.QuestionResponse, error)
	// SearchQuestionsFuzzy 模糊搜索：部分相似度打分 + 键盘布局转写兜底，
	// 零命中返回 ErrNoSearchResults。
	SearchQuestionsFuzzy(ctx context.Context, query string) ([]model.SearchHit, error)
}

type questionSearchService struct {
	questionRepo repository.QuestionRepository
	hitRepo      repository.HitCounterRepository
	threshold    int
	topN         int
}

// NewQuestionSearchService 创建一个新的 QuestionSearchService 实例。
// threshold 为 0-100 的相似度下限，topN 为单次搜索最多返回的命中数。
func NewQuestionSearchService(questionRepo repository.QuestionRepository, hitRepo repository.HitCounterRepository, threshold, topN int) QuestionSearchService {
	if threshold <= 0 || threshold > 100 {
		threshold = 75
	}
	if topN <= 0 {
		topN = 5
	}
	return &questionSearchService{
		questionRepo: questionRepo,
		hitRepo:      hitRepo,
		threshold:    threshold,
		topN:         topN,
	}
}

// SearchQuestions 对问题正文与答案做不区分大小写的子串搜索。
// 只返回顶层问题，每条结果带上完整的子问题树。
func (s *questionSearchService) SearchQuestions(ctx context.Context, query string) ([]model.QuestionResponse, error) {
	log.Infof("[QuestionSearchService] 收到精确搜索请求, query: '%s'", query)

	if textmatch.Normalize(query) == "" {
		return nil, ErrEmptyQuery
	}

	questions, err := s.questionRepo.SearchByText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("搜索问题失败: %w", err)
	}

	responses := make([]model.QuestionResponse, 0, len(questions))
	for _, question := range questions {
		// 与命中的子层级条目对应的顶层问题会出现在自己的结果里，这里只保留根
		if question.ParentQuestionID != nil {
			continue
		}
		resp, err := s.buildQuestionResponse(ctx, question)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	log.Infof("[QuestionSearchService] 精确搜索完成, query: '%s', 返回 %d 条结果", query, len(responses))
	return responses, nil
}

// probeHit 是双探针合并过程中的中间命中：记录得分与产生该得分的探针串。
type probeHit struct {
	question model.Question
	score    int
	probe    string
}

// SearchQuestionsFuzzy 执行模糊搜索。
// 流程：规范化查询 -> 纯拉丁输入时追加布局转写探针 -> 对全部问题逐一
// 计算部分相似度 -> 跨探针按最高得分去重合并 -> 为每条命中定位高亮
// 位置并组装子问题树。
func (s *questionSearchService) SearchQuestionsFuzzy(ctx context.Context, query string) ([]model.SearchHit, error) {
	log.Infof("[QuestionSearchService] 开始模糊搜索, query: '%s', threshold: %d, topN: %d", query, s.threshold, s.topN)

	// 1. 规范化查询
	normalized := textmatch.Normalize(query)
	if normalized == "" {
		log.Warnf("[QuestionSearchService] 查询串规范化后为空, 拒绝搜索")
		return nil, ErrEmptyQuery
	}

	// 2. 构造探针：规范化后的原查询；纯拉丁输入再加一个布局转写探针，
	// 兜底"想打西里尔文却停在拉丁布局"的场景
	probes := []string{normalized}
	if textmatch.IsLatin(normalized) {
		if translit := textmatch.Transliterate(normalized); translit != normalized {
			log.Infof("[QuestionSearchService] 查询为纯拉丁输入, 追加转写探针: '%s'", translit)
			probes = append(probes, translit)
		}
	}

	// 3. 单次批量读取全部问题并构建候选映射。
	// 候选映射按每次调用重建，全表 O(n) 扫描是当前接受的规模上限
	questions, err := s.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("读取问题候选集失败: %w", err)
	}
	log.Debugf("[QuestionSearchService] 候选集规模: %d", len(questions))

	items := make([]model.Searchable, 0, len(questions))
	byID := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		items = append(items, q)
		byID[q.ID] = q
	}
	keys, candidates := buildCandidateMap(items)

	// 4. 每个探针各跑一遍匹配，按问题 ID 去重合并，保留最高得分
	merged := make(map[uint]probeHit)
	for _, probe := range probes {
		for _, m := range textmatch.Extract(probe, keys, candidates, s.threshold, s.topN) {
			if prev, ok := merged[m.Key]; ok && prev.score >= m.Score {
				continue
			}
			merged[m.Key] = probeHit{question: byID[m.Key], score: m.Score, probe: probe}
		}
	}

	if len(merged) == 0 {
		log.Infof("[QuestionSearchService] 模糊搜索零命中, query: '%s'", query)
		return nil, ErrNoSearchResults
	}

	// 5. 按得分降序排列，得分相同保持 ID 升序，截断到 topN
	hits := make([]probeHit, 0, len(merged))
	for _, h := range merged {
		hits = append(hits, h)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].question.ID < hits[j].question.ID
	})
	if len(hits) > s.topN {
		hits = hits[:s.topN]
	}

	// 6. 组装最终命中：高亮位置 + 子问题树 + 点击计数
	results := make([]model.SearchHit, 0, len(hits))
	for _, hit := range hits {
		searchHit, err := s.buildSearchHit(ctx, hit)
		if err != nil {
			return nil, err
		}
		results = append(results, *searchHit)
	}

	log.Infof("[QuestionSearchService] 模糊搜索完成, query: '%s', 返回 %d 条命中", query, len(results))
	return results, nil
}

// buildCandidateMap 把可搜索条目整理为候选映射：
// keys 保留输入顺序，value 为规范化后的"正文 答案"拼接文本。
func buildCandidateMap(items []model.Searchable) ([]uint, map[uint]string) {
	keys := make([]uint, 0, len(items))
	candidates := make(map[uint]string, len(items))
	for _, item := range items {
		keys = append(keys, item.GetID())
		candidates[item.GetID()] = textmatch.Normalize(item.GetText() + " " + item.GetAnswer())
	}
	return keys, candidates
}

// buildSearchHit 为一条模糊命中组装完整响应：
// 用产生该命中的探针分别在正文与答案里定位高亮位置，再挂上子问题树。
func (s *questionSearchService) buildSearchHit(ctx context.Context, hit probeHit) (*model.SearchHit, error) {
	question := hit.question

	positions := make([]textmatch.MatchPosition, 0, 2)
	if pos := textmatch.FindBestMatchPosition(question.Text, hit.probe, "text"); pos != nil {
		positions = append(positions, *pos)
	}
	if pos := textmatch.FindBestMatchPosition(question.GetAnswer(), hit.probe, "answer"); pos != nil {
		positions = append(positions, *pos)
	}

	subs, err := s.questionRepo.FindSubQuestions(ctx, question.ID)
	if err != nil {
		return nil, fmt.Errorf("读取子问题失败: %w", err)
	}

	count, err := s.hitRepo.Get(ctx, question.ID)
	if err != nil {
		// 点击计数是展示性数据，读取失败降级为 0 而不中断搜索
		log.Warnf("[QuestionSearchService] 读取点击计数失败, questionID: %d, err: %v", question.ID, err)
		count = 0
	}

	return &model.SearchHit{
		ID:              question.ID,
		Text:            question.Text,
		Answer:          question.Answer,
		MatchPercentage: hit.score,
		MatchPositions:  positions,
		Author:          question.Author,
		AuthorEdit:      question.AuthorEdit,
		CategoryID:      question.CategoryID,
		SubcategoryID:   question.SubcategoryID,
		Number:          question.Number,
		Depth:           question.Depth,
		Count:           count,
		CreatedAt:       question.CreatedAt,
		UpdatedAt:       question.UpdatedAt,
		SubQuestions:    buildSubQuestionTree(subs),
	}, nil
}

// buildQuestionResponse 组装一条问题响应，挂上子问题树与点击计数。
func (s *questionSearchService) buildQuestionResponse(ctx context.Context, question model.Question) (*model.QuestionResponse, error) {
	subs, err := s.questionRepo.FindSubQuestions(ctx, question.ID)
	if err != nil {
		return nil, fmt.Errorf("读取子问题失败: %w", err)
	}

	count, err := s.hitRepo.Get(ctx, question.ID)
	if err != nil {
		log.Warnf("[QuestionSearchService] 读取点击计数失败, questionID: %d, err: %v", question.ID, err)
		count = 0
	}

	return &model.QuestionResponse{
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
		SubQuestions:     buildSubQuestionTree(subs),
	}, nil
}
