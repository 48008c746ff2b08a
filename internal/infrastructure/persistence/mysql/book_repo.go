package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookshelf/internal/domain/book"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库特定错误在此边界转换为业务错误，原始错误不外泄
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := toBookModel(b)

	// 2. 插入数据库
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填自增ID与数据库时间戳
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// ExistsByTitleAuthor 检查同名同作者图书是否已存在（忽略大小写）
func (r *bookRepository) ExistsByTitleAuthor(ctx context.Context, title, author string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookModel{}).
		Where("LOWER(title) = LOWER(?) AND LOWER(author) = LOWER(?)", title, author).
		Count(&count).Error

	if err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}

	return count > 0, nil
}

// Update 更新图书信息
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	// Save更新全部字段（实体持有完整状态，部分更新语义在领域层完成）
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}

	b.UpdatedAt = model.UpdatedAt
	return nil
}

// Delete 删除图书（物理删除）
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&BookModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}

	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// List 条件查询图书列表
// 排序固定为ID升序，保证结果可复现
func (r *bookRepository) List(ctx context.Context, params book.ListParams) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	// 构建查询
	query := r.db.WithContext(ctx).Model(&BookModel{})

	// 作者子串匹配（忽略大小写）
	if params.Author != "" {
		query = query.Where("LOWER(author) LIKE LOWER(?)", "%"+params.Author+"%")
	}

	// 类别精确匹配
	if params.Genre != "" {
		query = query.Where("genre = ?", string(params.Genre))
	}

	// 在馆状态精确匹配
	if params.Available != nil {
		query = query.Where("available = ?", *params.Available)
	}

	// 查询过滤后的总数（窗口生效前）
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	// 排序
	query = query.Order("id ASC")

	// 窗口：start与limit都提供时才生效
	if params.Windowed() {
		query = query.Offset(*params.Start).Limit(*params.Limit)
	}

	// 查询数据
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	// 转换为领域实体
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}

	return books, total, nil
}

// Count 图书总数
func (r *bookRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&BookModel{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, "查询图书总数失败")
	}
	return count, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookModel 领域实体 → GORM模型
func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		PublishedYear: b.PublishedYear,
		Genre:         string(b.Genre),
		Available:     b.Available,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:            model.ID,
		Title:         model.Title,
		Author:        model.Author,
		PublishedYear: model.PublishedYear,
		Genre:         book.Genre(model.Genre),
		Available:     model.Available,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}
