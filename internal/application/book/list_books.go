package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 过滤条件均可选，缺省即不过滤
// 2. 窗口参数start/limit成对提供时才生效，Total始终是过滤后的总数
// 3. 结果按ID升序排列（保证可复现）
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Author    string // 作者子串匹配（忽略大小写）
	Genre     string // 类别精确匹配（必须是合法枚举值）
	Available *bool  // 在馆状态精确匹配
	Start     *int   // 窗口起始偏移(>=0)
	Limit     *int   // 窗口条数(1-100)
}

// ListBooksResponse 列表查询响应DTO
// Start/Limit仅在窗口生效时返回
type ListBooksResponse struct {
	Items []BookResult `json:"items"`
	Total int64        `json:"total"`
	Start *int         `json:"start,omitempty"`
	Limit *int         `json:"limit,omitempty"`
}

// Execute 执行列表查询用例
// 空结果集不是错误，返回空列表
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	query := book.ListQuery{
		Author:    req.Author,
		Genre:     req.Genre,
		Available: req.Available,
	}

	// 窗口参数成对提供时才传递
	if req.Start != nil && req.Limit != nil {
		query.Start = req.Start
		query.Limit = req.Limit
	}

	books, total, err := uc.bookService.ListBooks(ctx, query)
	if err != nil {
		return nil, err
	}

	items := make([]BookResult, len(books))
	for i, b := range books {
		items[i] = *toBookResult(b)
	}

	resp := &ListBooksResponse{
		Items: items,
		Total: total,
	}
	if query.Start != nil && query.Limit != nil {
		resp.Start = query.Start
		resp.Limit = query.Limit
	}

	return resp, nil
}
