package main

import (
	"net/http"

	"api-consumer/internal/posts"

	"github.com/gin-gonic/gin"
)

// handleIndex godoc
// @Summary Welcome page
// @Description Render the welcome page with the current list of posts
// @Tags posts
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {string} string "HTML page with an error notice"
// @Router / [get]
func (app *App) handleIndex(c *gin.Context) {
	list, err := app.postService.GetPosts(c.Request.Context())
	if err != nil {
		c.HTML(statusForError(err), "welcome.tmpl", gin.H{
			"Posts": []posts.Post{},
			"Error": "Posts could not be loaded.",
		})
		return
	}

	c.HTML(http.StatusOK, "welcome.tmpl", gin.H{
		"Posts": list,
	})
}

// handleListPosts godoc
// @Summary List posts
// @Description Fetch posts from the posts provider. An unusable upstream response yields an empty list.
// @Tags posts
// @Produce json
// @Success 200 {array} posts.PostJSON
// @Failure 500 {object} ErrorResponse "Malformed upstream payload"
// @Failure 502 {object} ErrorResponse "Posts provider unreachable"
// @Router /api/posts [get]
func (app *App) handleListPosts(c *gin.Context) {
	list, err := app.postService.GetPosts(c.Request.Context())
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}
