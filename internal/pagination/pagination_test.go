package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)

	return c
}

func TestPage(t *testing.T) {
	assert.Equal(t, 1, Page(testContext(t, "/api/blogs/")))
	assert.Equal(t, 3, Page(testContext(t, "/api/blogs/?page=3")))
	assert.Equal(t, 1, Page(testContext(t, "/api/blogs/?page=0")))
	assert.Equal(t, 1, Page(testContext(t, "/api/blogs/?page=junk")))
}

func TestResponseEnvelope(t *testing.T) {
	c := testContext(t, "/api/blogs/?page=2")

	body := Response(c, 25, 2, 10, []string{"a"})

	assert.Equal(t, int64(25), body["count"])
	require.NotNil(t, body["next"])
	require.NotNil(t, body["previous"])
	assert.Contains(t, body["next"].(string), "page=3")
	assert.Contains(t, body["previous"].(string), "page=1")
}

func TestResponseEdges(t *testing.T) {
	first := Response(testContext(t, "/api/blogs/"), 25, 1, 10, nil)
	assert.Nil(t, first["previous"])
	assert.NotNil(t, first["next"])

	last := Response(testContext(t, "/api/blogs/?page=3"), 25, 3, 10, nil)
	assert.NotNil(t, last["previous"])
	assert.Nil(t, last["next"])

	empty := Response(testContext(t, "/api/blogs/"), 0, 1, 10, nil)
	assert.Nil(t, empty["next"])
	assert.Nil(t, empty["previous"])
}
