package dto

import "time"

// CreateBookRequest HTTP创建图书请求
// binding tag只做结构性校验（必填、长度），业务规则（类别枚举、
// 年份范围、作者格式）在领域层单点校验
type CreateBookRequest struct {
	Title         string `json:"title" binding:"required,max=255" example:"The Go Programming Language"`
	Author        string `json:"author" binding:"required,max=255" example:"Alan Donovan"`
	PublishedYear int    `json:"published_year" binding:"required" example:"2015"`
	Genre         string `json:"genre" binding:"required" example:"science"`
	Available     *bool  `json:"available" example:"true"` // 缺省为true
}

// UpdateBookRequest HTTP更新图书请求
// 所有字段可选，只更新提供的字段
type UpdateBookRequest struct {
	Title         *string `json:"title" binding:"omitempty,max=255" example:"The Go Programming Language"`
	Author        *string `json:"author" binding:"omitempty,max=255" example:"Alan Donovan"`
	PublishedYear *int    `json:"published_year" example:"2015"`
	Genre         *string `json:"genre" example:"science"`
	Available     *bool   `json:"available" example:"false"`
}

// ListBooksQuery HTTP列表查询参数
// start与limit必须成对提供才启用窗口
type ListBooksQuery struct {
	Author    string `form:"author" binding:"omitempty,max=255" example:"Donovan"`
	Genre     string `form:"genre" binding:"omitempty,max=20" example:"science"`
	Available *bool  `form:"available" example:"true"`
	Start     *int   `form:"start" binding:"omitempty,min=0" example:"0"`
	Limit     *int   `form:"limit" binding:"omitempty,min=1,max=100" example:"20"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ID            uint      `json:"id" example:"1"`
	Title         string    `json:"title" example:"The Go Programming Language"`
	Author        string    `json:"author" example:"Alan Donovan"`
	PublishedYear int       `json:"published_year" example:"2015"`
	Genre         string    `json:"genre" example:"science"`
	Available     bool      `json:"available" example:"true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListBooksResponse HTTP图书列表响应
type ListBooksResponse struct {
	Items []BookResponse `json:"items"`
	Total int64          `json:"total" example:"42"`
	Start *int           `json:"start,omitempty" example:"0"`
	Limit *int           `json:"limit,omitempty" example:"20"`
}

// DeleteBookResponse HTTP删除图书响应
type DeleteBookResponse struct {
	ID uint `json:"id" example:"1"`
}

// HealthResponse HTTP健康检查响应
// 数据库不可达时Database为"down"，HTTP状态码仍为200
type HealthResponse struct {
	Status        string `json:"status" example:"ok"`
	UptimeSeconds int64  `json:"uptime_seconds" example:"3600"`
	Database      string `json:"database" example:"up"`
	Books         *int64 `json:"books,omitempty" example:"42"` // 数据库可达时返回图书总数
}
