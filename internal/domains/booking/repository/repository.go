package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"healthtick/infras/mongo"
	"healthtick/infras/otel"
	"healthtick/internal/domains/booking/model"
	"healthtick/shared/constant"
	"healthtick/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (string, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	Exist(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	collection *mongoDriver.Collection
	otel       otel.Otel
}

func New(db *mongo.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		collection: db.Database.Collection(model.CollectionName),
		otel:       otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	// Hex object ids never contain a dash, so direct booking ids stay
	// distinguishable from virtual occurrence ids.
	booking.ID = primitive.NewObjectID().Hex()

	_, err := repo.collection.InsertOne(ctx, booking)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return booking.ID, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	var booking model.Booking

	err := repo.collection.FindOne(ctx, bson.M{model.FieldID: id}).Decode(&booking)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return booking, ErrNotFound
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return booking, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	sort := options.Find().SetSort(bson.D{
		{Key: model.FieldDate, Value: 1},
		{Key: model.FieldTime, Value: 1},
	})

	cursor, err := repo.collection.Find(ctx, bson.M{}, sort)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}
	defer cursor.Close(ctx)

	bookings := []model.Booking{}

	err = cursor.All(ctx, &bookings)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	count, err := repo.collection.CountDocuments(ctx, bson.M{model.FieldID: id})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return count > 0, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	result, err := repo.collection.DeleteOne(ctx, bson.M{model.FieldID: id})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
