package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-tracker/internal/domain"
)

// taskDocument is the stored shape of a task: { _id: ObjectId, title: string }.
// ID is left zero on insert so the driver assigns one.
type taskDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"title"`
}

func newTaskDocument(title string) taskDocument {
	return taskDocument{Title: title}
}

func (d taskDocument) toDomain() *domain.Task {
	task := domain.NewTask(d.Title)
	return &task
}
