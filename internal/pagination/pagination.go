package pagination

import "strconv"

// デフォルトの1ページ件数
const DefaultLimit = 12

// ページング計算の結果。状態もI/Oも持たない
type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	ItemsPerPage int   `json:"items_per_page"`
	Offset       int   `json:"-"`
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	HasNextPage  bool  `json:"has_next_page"`
	HasPrevPage  bool  `json:"has_prev_page"`
}

// Paginate は1始まりのページ番号からoffsetと総ページ数を計算する。
// page <= 0 は1に、limit <= 0 はDefaultLimitに矯正する
func Paginate(page int, limit int, totalItems int64) Pagination {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	//切り上げ除算
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	return Pagination{
		CurrentPage:  page,
		ItemsPerPage: limit,
		Offset:       (page - 1) * limit,
		TotalItems:   totalItems,
		TotalPages:   totalPages,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

// ParsePage はクエリ文字列のページ番号をパースする。
// 数値でない・0以下は1にフォールバック
func ParsePage(raw string) int {
	p, err := strconv.Atoi(raw)
	if err != nil || p <= 0 {
		return 1
	}
	return p
}
