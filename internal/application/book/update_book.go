package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// UpdateBookUseCase 更新图书用例
// 部分更新：只修改提供的字段，ID与CreatedAt不可变
type UpdateBookUseCase struct {
	bookService book.Service
}

// NewUpdateBookUseCase 创建更新用例
func NewUpdateBookUseCase(bookService book.Service) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService: bookService,
	}
}

// UpdateBookRequest 更新图书请求DTO
// nil字段表示不更新
type UpdateBookRequest struct {
	Title         *string
	Author        *string
	PublishedYear *int
	Genre         *string
	Available     *bool
}

// Execute 执行更新用例
// 返回更新后的完整记录，UpdatedAt已刷新
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.UpdateBook(ctx, id, book.Update{
		Title:         req.Title,
		Author:        req.Author,
		PublishedYear: req.PublishedYear,
		Genre:         req.Genre,
		Available:     req.Available,
	})
	if err != nil {
		return nil, err
	}

	return toBookResult(b), nil
}
