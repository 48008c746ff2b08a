package book

import (
	"testing"
)

// TestParseGenre_Valid 测试合法类别解析
func TestParseGenre_Valid(t *testing.T) {
	valid := []string{"fiction", "non-fiction", "science", "history", "other"}

	for _, s := range valid {
		g, err := ParseGenre(s)
		if err != nil {
			t.Errorf("ParseGenre(%q)返回错误: %v", s, err)
		}
		if g.String() != s {
			t.Errorf("ParseGenre(%q) = %q", s, g)
		}
	}
}

// TestParseGenre_Invalid 测试非法类别拒绝
func TestParseGenre_Invalid(t *testing.T) {
	invalid := []string{"", "mystery", "Fiction", "SCIENCE", "sci-fi", " science"}

	for _, s := range invalid {
		if _, err := ParseGenre(s); err != ErrInvalidGenre {
			t.Errorf("ParseGenre(%q)应返回ErrInvalidGenre，实际: %v", s, err)
		}
	}
}

// TestGenreValues 测试枚举集合完整性
func TestGenreValues(t *testing.T) {
	values := GenreValues()
	if len(values) != 5 {
		t.Fatalf("期望5个类别，实际%d个: %v", len(values), values)
	}

	for _, v := range values {
		if !Genre(v).Valid() {
			t.Errorf("GenreValues返回了非法类别: %q", v)
		}
	}
}
