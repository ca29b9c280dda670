package posts

import (
	"encoding/json"

	"api-consumer/internal/pipeline"
)

// Post is an immutable post record. Copies are independent values.
type Post struct {
	id    int64
	title string
	body  string
}

func NewPost(id int64, title, body string) Post {
	return Post{id: id, title: title, body: body}
}

func (p Post) ID() int64     { return p.id }
func (p Post) Title() string { return p.title }
func (p Post) Body() string  { return p.body }

// ToMap returns the {id, title, body} mapping the record was built from.
func (p Post) ToMap() map[string]any {
	return map[string]any{
		"id":    p.id,
		"title": p.title,
		"body":  p.body,
	}
}

// PostFromMap builds a Post from an {id, title, body} mapping.
func PostFromMap(m map[string]any) (Post, error) {
	return postFromObject(m, "")
}

// PostJSON is the wire form of a Post.
type PostJSON struct {
	ID    int64  `json:"id" example:"1"`
	Title string `json:"title" example:"sunt aut facere"`
	Body  string `json:"body" example:"quia et suscipit"`
}

func (p Post) MarshalJSON() ([]byte, error) {
	return json.Marshal(PostJSON{ID: p.id, Title: p.title, Body: p.body})
}

func postFromObject(obj map[string]any, path string) (Post, error) {
	id, err := pipeline.IntField(obj, "id", path)
	if err != nil {
		return Post{}, err
	}
	title, err := pipeline.StringField(obj, "title", path)
	if err != nil {
		return Post{}, err
	}
	body, err := pipeline.StringField(obj, "body", path)
	if err != nil {
		return Post{}, err
	}
	return NewPost(id, title, body), nil
}
