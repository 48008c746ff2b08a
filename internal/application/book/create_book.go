package book

import (
	"context"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// CreateBookUseCase 创建图书用例
type CreateBookUseCase struct {
	bookService book.Service
}

// NewCreateBookUseCase 创建用例实例
func NewCreateBookUseCase(bookService book.Service) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService: bookService,
	}
}

// CreateBookRequest 创建图书请求DTO
type CreateBookRequest struct {
	Title         string
	Author        string
	PublishedYear int
	Genre         string
	Available     *bool // nil时默认在馆
}

// Execute 执行创建图书用例
// 校验失败不会产生任何持久化副作用
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResult, error) {
	b, err := uc.bookService.CreateBook(ctx, req.Title, req.Author, req.PublishedYear, req.Genre, req.Available)
	if err != nil {
		return nil, err
	}

	return toBookResult(b), nil
}
