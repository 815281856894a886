package task

import "github.com/thenoetrevino/taskflow/internal/models"

// DefaultCategoryID is assigned when a task is created without a category
const DefaultCategoryID = 1

func notFound(id int) error {
	return &models.NotFoundError{Entity: "task", ID: id}
}
