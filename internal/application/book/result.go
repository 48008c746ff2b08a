package book

import (
	"time"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// BookResult 图书结果DTO
// 应用层对外的统一图书表示，各用例共用
// 时间字段保留time.Time，由JSON序列化为RFC3339（保留亚秒精度，
// 客户端可据此区分created_at与updated_at）
type BookResult struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	PublishedYear int       `json:"published_year"`
	Genre         string    `json:"genre"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// toBookResult 领域实体 → 结果DTO
func toBookResult(b *book.Book) *BookResult {
	return &BookResult{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedYear: b.PublishedYear,
		Genre:         b.Genre.String(),
		Available:     b.Available,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
