package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileBody struct {
	Author struct {
		Username string `json:"username"`
	} `json:"author"`
	PostsCount int64 `json:"posts_count"`
	Following  bool  `json:"following"`
	Posts      []struct {
		Text string `json:"text"`
	} `json:"posts"`
}

func TestProfile(t *testing.T) {
	srv, app := newTestServer(t)
	author, _ := createUser(t, srv, "writer")
	seedPosts(t, srv, author, 3)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/writer/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body profileBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "writer", body.Author.Username)
	assert.Equal(t, int64(3), body.PostsCount)
	assert.False(t, body.Following, "guests never see a following flag set")
	assert.Len(t, body.Posts, 3)
}

func TestProfile_FollowingFlag(t *testing.T) {
	srv, app := newTestServer(t)
	reader, token := createUser(t, srv, "reader")
	writer, _ := createUser(t, srv, "writer")
	require.NoError(t, srv.db.Create(&models.Follow{UserID: reader.ID, AuthorID: writer.ID}).Error)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/profile/writer/", nil, token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body profileBody
	decodeBody(t, resp, &body)
	assert.True(t, body.Following)
}

func TestProfile_Unknown(t *testing.T) {
	_, app := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/profile/ghost/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
