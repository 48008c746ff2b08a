// Package memory 提供Repository的内存实现
// 用于单元测试与本地开发，行为与mysql实现保持一致：
// 不存在返回ErrBookNotFound、列表按ID升序、Total为过滤后总数
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

var _ book.Repository = (*BookRepository)(nil)

// BookRepository 图书仓储的内存实现
type BookRepository struct {
	mu     sync.RWMutex
	books  map[uint]book.Book
	nextID uint
}

// NewBookRepository 创建内存图书仓储
func NewBookRepository() *BookRepository {
	return &BookRepository{
		books:  make(map[uint]book.Book),
		nextID: 1,
	}
}

// Create 创建图书（分配自增ID）
func (r *BookRepository) Create(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = r.nextID
	r.nextID++
	r.books[b.ID] = *b
	return nil
}

// FindByID 根据ID查找图书
func (r *BookRepository) FindByID(_ context.Context, id uint) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &b, nil
}

// ExistsByTitleAuthor 检查同名同作者图书是否已存在（忽略大小写）
func (r *BookRepository) ExistsByTitleAuthor(_ context.Context, title, author string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.books {
		if strings.EqualFold(b.Title, title) && strings.EqualFold(b.Author, author) {
			return true, nil
		}
	}
	return false, nil
}

// Update 更新图书信息
func (r *BookRepository) Update(_ context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	r.books[b.ID] = *b
	return nil
}

// Delete 删除图书
func (r *BookRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

// List 条件查询图书列表（ID升序）
func (r *BookRepository) List(_ context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]book.Book, 0, len(r.books))
	for _, b := range r.books {
		if params.Author != "" &&
			!strings.Contains(strings.ToLower(b.Author), strings.ToLower(params.Author)) {
			continue
		}
		if params.Genre != "" && b.Genre != params.Genre {
			continue
		}
		if params.Available != nil && b.Available != *params.Available {
			continue
		}
		matched = append(matched, b)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))

	// 窗口裁剪
	if params.Windowed() {
		start := *params.Start
		if start > len(matched) {
			start = len(matched)
		}
		end := start + *params.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}

	books := make([]*book.Book, len(matched))
	for i := range matched {
		b := matched[i]
		books[i] = &b
	}
	return books, total, nil
}

// Count 图书总数
func (r *BookRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.books)), nil
}
