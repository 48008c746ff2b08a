package book

import (
	"strings"
	"time"
	"unicode"
)

// 出版年份下限（古腾堡活字印刷术之后）
const minPublishedYear = 1450

// Book 图书实体(聚合根)
// 设计说明:
// 1. ID由数据库自增分配，分配后不可变
// 2. CreatedAt只在创建时设置一次；UpdatedAt每次成功更新时刷新
// 3. 不变量：UpdatedAt >= CreatedAt 始终成立
type Book struct {
	ID            uint
	Title         string // 书名
	Author        string // 作者
	PublishedYear int    // 出版年份
	Genre         Genre  // 类别(封闭枚举)
	Available     bool   // 是否在馆
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBook 创建新图书(工厂方法)
// 业务规则校验由调用方（领域服务）完成
func NewBook(title, author string, publishedYear int, genre Genre, available bool) *Book {
	now := time.Now()
	return &Book{
		Title:         title,
		Author:        author,
		PublishedYear: publishedYear,
		Genre:         genre,
		Available:     available,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Update 部分更新参数
// nil表示该字段不更新；非nil的字段按创建时的规则校验
type Update struct {
	Title         *string
	Author        *string
	PublishedYear *int
	Genre         *string
	Available     *bool
}

// Empty 判断是否没有提供任何更新字段
func (u Update) Empty() bool {
	return u.Title == nil && u.Author == nil && u.PublishedYear == nil &&
		u.Genre == nil && u.Available == nil
}

// Apply 应用部分更新(领域行为)
// 只修改提供的字段，刷新UpdatedAt；ID与CreatedAt不可变
// 任一字段校验失败则整体不生效
func (b *Book) Apply(u Update) error {
	next := *b

	if u.Title != nil {
		if err := validateTitle(*u.Title); err != nil {
			return err
		}
		next.Title = *u.Title
	}
	if u.Author != nil {
		if err := validateAuthor(*u.Author); err != nil {
			return err
		}
		next.Author = *u.Author
	}
	if u.PublishedYear != nil {
		if err := validatePublishedYear(*u.PublishedYear); err != nil {
			return err
		}
		next.PublishedYear = *u.PublishedYear
	}
	if u.Genre != nil {
		genre, err := ParseGenre(*u.Genre)
		if err != nil {
			return err
		}
		next.Genre = genre
	}
	if u.Available != nil {
		next.Available = *u.Available
	}

	next.UpdatedAt = time.Now()
	*b = next
	return nil
}

// =========================================
// 字段校验规则
// =========================================

// validateTitle 书名校验：非空且不能全是数字
func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if isAllDigits(title) {
		return ErrNumericTitle
	}
	return nil
}

// validateAuthor 作者校验：至少3个字符且不含数字
func validateAuthor(author string) error {
	author = strings.TrimSpace(author)
	if author == "" {
		return ErrEmptyAuthor
	}
	if len([]rune(author)) < 3 {
		return ErrAuthorTooShort
	}
	for _, r := range author {
		if unicode.IsDigit(r) {
			return ErrAuthorWithDigits
		}
	}
	return nil
}

// validatePublishedYear 出版年份校验：1450到当前年份之间
func validatePublishedYear(year int) error {
	if year < minPublishedYear || year > time.Now().Year() {
		return ErrInvalidPublishedYear
	}
	return nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
