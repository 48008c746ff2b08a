package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口，infrastructure层实现
// 2. 便于Mock测试，不依赖具体数据库实现
type Repository interface {
	// Create 创建图书（回填自增ID与数据库时间戳）
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书，不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// ExistsByTitleAuthor 检查同名同作者图书是否已存在（忽略大小写）
	ExistsByTitleAuthor(ctx context.Context, title, author string) (bool, error)

	// Update 更新图书信息
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书（物理删除），不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// List 条件查询图书列表，返回匹配行与过滤后的总数
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Count 图书总数（健康检查用）
	Count(ctx context.Context) (int64, error)
}

// ListParams 列表查询参数
// 过滤条件均可选：零值/nil表示不过滤
type ListParams struct {
	Author    string // 作者子串匹配（忽略大小写）
	Genre     Genre  // 类别精确匹配（空串表示不过滤）
	Available *bool  // 在馆状态精确匹配

	// 窗口参数：两者都提供时才生效（与过滤独立，Total始终是过滤后的总数）
	Start *int // 起始偏移(>=0)
	Limit *int // 返回条数(1-100)
}

// Windowed 判断是否启用窗口查询
func (p ListParams) Windowed() bool {
	return p.Start != nil && p.Limit != nil
}
