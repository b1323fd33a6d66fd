package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adanyl0v/go-todo-api/internal/models"
)

// mongoTaskDocument is the stored shape of a task. Fields that were
// never supplied are left out of the document.
type mongoTaskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       *string            `bson:"title,omitempty"`
	Description *string            `bson:"description,omitempty"`
	Completed   bool               `bson:"completed"`
}

func (d *mongoTaskDocument) toModel() *models.Task {
	return &models.Task{
		ID:          d.ID.Hex(),
		Title:       valueOrZero(d.Title),
		Description: valueOrZero(d.Description),
		Completed:   d.Completed,
	}
}

type mongoTaskServiceImpl struct {
	logger     zerolog.Logger
	collection *mongo.Collection
}

func NewMongoTaskService(
	logger zerolog.Logger,
	collection *mongo.Collection,
) TaskService {
	return &mongoTaskServiceImpl{
		logger:     logger,
		collection: collection,
	}
}

func (s *mongoTaskServiceImpl) GetTasks(ctx context.Context) ([]*models.Task, error) {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to find tasks")
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	tasks := make([]*models.Task, 0)
	for cursor.Next(ctx) {
		var doc mongoTaskDocument
		err = cursor.Decode(&doc)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to decode task")
			return nil, fmt.Errorf("failed to decode task: %w", err)
		}
		tasks = append(tasks, doc.toModel())
	}

	err = cursor.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over cursor")
		return nil, fmt.Errorf("failed to iterate over tasks: %w", err)
	}

	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("found tasks")
	return tasks, nil
}

func (s *mongoTaskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	doc := mongoTaskDocument{
		ID:          primitive.NewObjectID(),
		Title:       params.Title,
		Description: params.Description,
		Completed:   valueOrZero(params.Completed),
	}

	_, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}
	task := doc.toModel()

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *mongoTaskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	objectID, err := parseObjectID(params.ID)
	if err != nil {
		return nil, err
	}
	filter := bson.D{{Key: "_id", Value: objectID}}

	var doc mongoTaskDocument
	if params.empty() {
		// $set with no fields is rejected by the server.
		err = s.collection.FindOne(ctx, filter).Decode(&doc)
	} else {
		set := bson.D{}
		if params.Title != nil {
			set = append(set, bson.E{Key: "title", Value: *params.Title})
		}
		if params.Description != nil {
			set = append(set, bson.E{Key: "description", Value: *params.Description})
		}
		if params.Completed != nil {
			set = append(set, bson.E{Key: "completed", Value: *params.Completed})
		}

		err = s.collection.FindOneAndUpdate(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: set}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&doc)
	}
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			s.logger.Warn().
				Str("task_id", params.ID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to update task")
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Info().
		Str("task_id", params.ID).
		Msg("updated task")
	return doc.toModel(), nil
}

func (s *mongoTaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return err
	}

	result, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: objectID}})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return fmt.Errorf("failed to delete task: %w", err)
	}
	s.logger.Debug().
		Str("task_id", id).
		Int64("affected", result.DeletedCount).
		Msg("deleted task")

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w %q: %w", ErrInvalidTaskID, id, err)
	}
	return objectID, nil
}
