package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrTitleAuthorDuplicate 同名同作者的图书已存在
	ErrTitleAuthorDuplicate = apperrors.New(apperrors.ErrCodeDuplicateEntry, "相同书名和作者的图书已存在")

	// ErrEmptyTitle 书名为空
	ErrEmptyTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能为空")

	// ErrNumericTitle 书名全是数字
	ErrNumericTitle = apperrors.New(apperrors.ErrCodeInvalidParams, "书名不能全是数字")

	// ErrEmptyAuthor 作者为空
	ErrEmptyAuthor = apperrors.New(apperrors.ErrCodeInvalidParams, "作者不能为空")

	// ErrAuthorTooShort 作者名过短
	ErrAuthorTooShort = apperrors.New(apperrors.ErrCodeInvalidParams, "作者名至少3个字符")

	// ErrAuthorWithDigits 作者名包含数字
	ErrAuthorWithDigits = apperrors.New(apperrors.ErrCodeInvalidParams, "作者名不能包含数字")

	// ErrInvalidPublishedYear 无效的出版年份
	ErrInvalidPublishedYear = apperrors.New(apperrors.ErrCodeInvalidParams, "出版年份必须在1450到当前年份之间")

	// ErrInvalidGenre 类别不在枚举范围内
	ErrInvalidGenre = apperrors.New(apperrors.ErrCodeInvalidGenre,
		"类别必须是以下之一: "+genreValuesHint())

	// ErrEmptyUpdate 更新请求未提供任何字段
	ErrEmptyUpdate = apperrors.New(apperrors.ErrCodeInvalidParams, "至少需要提供一个更新字段")
)
