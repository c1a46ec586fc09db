// Package pagination computes page metadata and page links for listings.
package pagination

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultItemsPerPage = 10
	PageParam           = "pageno"
)

type Link struct {
	Page   int    `json:"page"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

type Pagination struct {
	Count        int    `json:"count"`
	ItemsPerPage int    `json:"items_per_page"`
	PageNo       int    `json:"pageno"`
	Offset       int    `json:"offset"`
	TotalPages   int    `json:"total_pages"`
	Links        []Link `json:"links"`
}

// Paginate builds one link per page for count items. Links reuse baseURL and
// only replace its pageno parameter, so search and other parameters survive.
// Out-of-range arguments are clamped: itemsPerPage falls back to the default
// and pageNo to 1. pageNo is capped so the offset cannot overflow.
func Paginate(count, itemsPerPage, pageNo int, baseURL string) Pagination {
	if count < 0 {
		count = 0
	}
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultItemsPerPage
	}
	if pageNo < 1 {
		pageNo = 1
	}
	if maxPage := math.MaxInt / itemsPerPage; pageNo > maxPage {
		pageNo = maxPage
	}

	totalPages := count / itemsPerPage
	if count%itemsPerPage != 0 {
		totalPages++
	}
	links := make([]Link, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		links = append(links, Link{
			Page:   page,
			URL:    pageURL(baseURL, page),
			Active: page == pageNo,
		})
	}

	return Pagination{
		Count:        count,
		ItemsPerPage: itemsPerPage,
		PageNo:       pageNo,
		Offset:       itemsPerPage * (pageNo - 1),
		TotalPages:   totalPages,
		Links:        links,
	}
}

func pageURL(baseURL string, page int) string {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		sep := "?"
		if strings.Contains(baseURL, "?") {
			sep = "&"
		}
		return baseURL + sep + PageParam + "=" + strconv.Itoa(page)
	}

	query := parsed.Query()
	query.Set(PageParam, strconv.Itoa(page))
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
