package pagination

import (
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
)

const DefaultPageSize = 10

// Page reads the requested page number from the query string, defaulting
// to the first page.
func Page(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}

// Response builds the {count, next, previous, results} page envelope.
// next and previous are links to the adjacent pages, or null at either
// edge.
func Response(c *gin.Context, count int64, page, size int, results interface{}) gin.H {
	totalPages := int((count + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	var next, previous interface{}
	if page < totalPages {
		next = pageURL(c.Request.URL, page+1)
	}
	if page > 1 {
		previous = pageURL(c.Request.URL, page-1)
	}

	return gin.H{
		"count":    count,
		"next":     next,
		"previous": previous,
		"results":  results,
	}
}

func pageURL(u *url.URL, page int) string {
	link := *u
	q := link.Query()
	q.Set("page", strconv.Itoa(page))
	link.RawQuery = q.Encode()

	return link.String()
}
