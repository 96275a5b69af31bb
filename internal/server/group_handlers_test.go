package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPosts(t *testing.T) {
	srv, app := newTestServer(t)
	author, _ := createUser(t, srv, "writer")
	group := createGroup(t, srv, "cats")

	inGroup := &models.Post{Text: "about cats", AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, srv.db.Create(inGroup).Error)
	createPost(t, srv, author, "ungrouped")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/group/cats/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Group struct {
			Slug        string `json:"slug"`
			Description string `json:"description"`
		} `json:"group"`
		Posts []struct {
			Text string `json:"text"`
		} `json:"posts"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "cats", body.Group.Slug)
	require.Len(t, body.Posts, 1, "only posts assigned to the group")
	assert.Equal(t, "about cats", body.Posts[0].Text)
}

func TestGroupPosts_UnknownSlug(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/group/nope/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
