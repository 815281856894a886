package category

import "github.com/thenoetrevino/taskflow/internal/models"

func notFound(id int) error {
	return &models.NotFoundError{Entity: "category", ID: id}
}
