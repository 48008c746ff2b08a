package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验与仓储调用
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// CreateBook 创建图书
	// 业务规则:
	// - 书名非空且不能全是数字
	// - 作者至少3个字符且不含数字
	// - 出版年份在1450到当前年份之间
	// - 类别必须在枚举范围内
	// - 同名同作者(忽略大小写)的图书不能重复创建
	// available为nil时默认在馆(true)
	CreateBook(ctx context.Context, title, author string, publishedYear int, genre string, available *bool) (*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 部分更新图书
	// 只修改提供的字段；字段校验规则与创建时一致
	// ID与CreatedAt不可变，UpdatedAt刷新为当前时间
	UpdateBook(ctx context.Context, id uint, upd Update) (*Book, error)

	// DeleteBook 删除图书（物理删除）
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 条件查询图书列表
	// 结果按ID升序排列（保证可复现）
	ListBooks(ctx context.Context, query ListQuery) ([]*Book, int64, error)

	// CountBooks 图书总数
	CountBooks(ctx context.Context) (int64, error)
}

// ListQuery 列表查询条件（类别尚未解析的原始输入）
type ListQuery struct {
	Author    string // 作者子串匹配（忽略大小写）
	Genre     string // 类别（空串表示不过滤，非空必须是合法枚举值）
	Available *bool  // 在馆状态
	Start     *int   // 窗口起始偏移
	Limit     *int   // 窗口条数
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title, author string, publishedYear int, genre string, available *bool) (*Book, error) {
	// 1. 字段校验
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateAuthor(author); err != nil {
		return nil, err
	}
	if err := validatePublishedYear(publishedYear); err != nil {
		return nil, err
	}
	g, err := ParseGenre(genre)
	if err != nil {
		return nil, err
	}

	// 2. 重复检查（同名同作者视为同一本书）
	exists, err := s.repo.ExistsByTitleAuthor(ctx, title, author)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrTitleAuthorDuplicate
	}

	// 3. 创建实体（available缺省为true）
	avail := true
	if available != nil {
		avail = *available
	}
	b := NewBook(title, author, publishedYear, g, avail)

	// 4. 持久化
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 部分更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, upd Update) (*Book, error) {
	if upd.Empty() {
		return nil, ErrEmptyUpdate
	}

	// 1. 查询图书（不存在返回ErrBookNotFound）
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 应用更新（字段校验失败则整体不生效）
	if err := b.Apply(upd); err != nil {
		return nil, err
	}

	// 3. 持久化
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListBooks 条件查询图书列表
func (s *service) ListBooks(ctx context.Context, query ListQuery) ([]*Book, int64, error) {
	params := ListParams{
		Author:    query.Author,
		Available: query.Available,
		Start:     query.Start,
		Limit:     query.Limit,
	}

	// 类别过滤在此单点校验，非法值直接拒绝而不是静默返回空集
	if query.Genre != "" {
		g, err := ParseGenre(query.Genre)
		if err != nil {
			return nil, 0, err
		}
		params.Genre = g
	}

	return s.repo.List(ctx, params)
}

// CountBooks 图书总数
func (s *service) CountBooks(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
