package book

import "strings"

// Genre 图书类别（封闭枚举）
// 设计说明:
// 1. 使用独立类型而非裸string，非法值在ParseGenre单点拦截
// 2. 数据库层使用相同的字符串字面量存储
type Genre string

const (
	GenreFiction    Genre = "fiction"
	GenreNonFiction Genre = "non-fiction"
	GenreScience    Genre = "science"
	GenreHistory    Genre = "history"
	GenreOther      Genre = "other"
)

// genres 合法类别集合
var genres = []Genre{
	GenreFiction,
	GenreNonFiction,
	GenreScience,
	GenreHistory,
	GenreOther,
}

// Valid 判断类别是否在枚举范围内
func (g Genre) Valid() bool {
	for _, v := range genres {
		if g == v {
			return true
		}
	}
	return false
}

func (g Genre) String() string {
	return string(g)
}

// ParseGenre 解析类别字符串
// 非法值返回ErrInvalidGenre（错误信息中包含全部合法取值）
func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.Valid() {
		return "", ErrInvalidGenre
	}
	return g, nil
}

// GenreValues 返回全部合法类别（用于错误提示与文档）
func GenreValues() []string {
	values := make([]string, len(genres))
	for i, g := range genres {
		values[i] = string(g)
	}
	return values
}

// genreValuesHint 合法取值提示串，如"fiction, non-fiction, ..."
func genreValuesHint() string {
	return strings.Join(GenreValues(), ", ")
}
