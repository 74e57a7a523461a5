package services

import (
	"encoding/json"
	"fmt"

	"github.com/OmarHamdi11/blog-rest-api/errs"
	"github.com/OmarHamdi11/blog-rest-api/models"
)

// Merge-patch: a payload maps field names to replacement values. Only the
// named fields are overwritten; the rest of the resource is carried over
// untouched. Field names that do not exist on the resource are ignored, and
// so are the identifier and immutable relations. Values that cannot be
// coerced to the field's type are rejected. The merged result is re-validated
// with the same rules as a full create/update before anything is persisted.

func applyPostPatch(dto models.PostDTO, payload map[string]any) (models.PostDTO, error) {
	for name, raw := range payload {
		switch name {
		case "title":
			s, err := coerceString("title", raw)
			if err != nil {
				return models.PostDTO{}, err
			}
			dto.Title = s
		case "description":
			s, err := coerceString("description", raw)
			if err != nil {
				return models.PostDTO{}, err
			}
			dto.Description = s
		case "content":
			s, err := coerceString("content", raw)
			if err != nil {
				return models.PostDTO{}, err
			}
			dto.Content = s
		case "categoryId":
			id, err := coerceID("categoryId", raw)
			if err != nil {
				return models.PostDTO{}, err
			}
			dto.CategoryID = id
		default:
			// unknown or immutable field, ignored
		}
	}
	return dto, nil
}

func applyCommentPatch(dto models.CommentDTO, payload map[string]any) (models.CommentDTO, error) {
	for name, raw := range payload {
		switch name {
		case "name":
			s, err := coerceString("name", raw)
			if err != nil {
				return models.CommentDTO{}, err
			}
			dto.Name = s
		case "email":
			s, err := coerceString("email", raw)
			if err != nil {
				return models.CommentDTO{}, err
			}
			dto.Email = s
		case "body":
			s, err := coerceString("body", raw)
			if err != nil {
				return models.CommentDTO{}, err
			}
			dto.Body = s
		default:
			// unknown or immutable field (id, postId), ignored
		}
	}
	return dto, nil
}

func coerceString(field string, raw any) (string, error) {
	s, ok := raw.(string)
	if !ok {
		return "", errs.NewValidationError(field, fmt.Sprintf("%s must be a string", field))
	}
	return s, nil
}

// coerceID accepts the numeric shapes a decoded JSON body can take. Anything
// else, including fractional numbers, fails validation.
func coerceID(field string, raw any) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, errs.NewValidationError(field, fmt.Sprintf("%s must be an integer", field))
		}
		return id, nil
	case float64:
		id := int64(v)
		if float64(id) != v {
			return 0, errs.NewValidationError(field, fmt.Sprintf("%s must be an integer", field))
		}
		return id, nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, errs.NewValidationError(field, fmt.Sprintf("%s must be an integer", field))
	}
}
