package models

import "net/url"

type Category struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
	Description  string `json:"description,omitempty"`
	SortOrder    int    `json:"sortOrder"`
	CreateTime   string `json:"createTime,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"`
}

type CategoryInput struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description,omitempty"`
	SortOrder    int    `json:"sortOrder,omitempty"`
}

type CategoryQuery struct {
	PageNum      int
	PageSize     int
	CategoryName string
}

func (q CategoryQuery) Values() url.Values {
	v := url.Values{}
	setInt(v, "pageNum", q.PageNum)
	setInt(v, "pageSize", q.PageSize)
	setString(v, "categoryName", q.CategoryName)
	return v
}
