package posts

import "api-consumer/internal/pipeline"

// MapPosts converts a decoded JSON list of {id, title, body} objects into
// posts, preserving source order. Any missing or mistyped field fails the
// whole list with a *pipeline.MappingError.
func MapPosts(payload any) ([]Post, error) {
	items, err := pipeline.List(payload, "")
	if err != nil {
		return nil, err
	}

	result := make([]Post, 0, len(items))
	for i, item := range items {
		path := pipeline.IndexPath("", i)
		obj, err := pipeline.Object(item, path)
		if err != nil {
			return nil, err
		}
		post, err := postFromObject(obj, path)
		if err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, nil
}
