package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"task-tracker/internal/domain"
	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/logging"
)

const (
	DefaultDatabase   = "task"
	DefaultCollection = "entry"
	DefaultAppName    = "Task"
)

// ConnectionFailureMessage is reported when the client cannot be built from MONGO_DB_URL.
const ConnectionFailureMessage = "Something went wrong when connecting to the database. Check if the MONGO_DB_URL env variable is correct and the server is running."

// Options configures where tasks are stored.
type Options struct {
	URL        string
	Database   string
	Collection string
	AppName    string
}

// DefaultOptions returns the fixed task.entry namespace for the given connection URL.
func DefaultOptions(url string) Options {
	return Options{
		URL:        url,
		Database:   DefaultDatabase,
		Collection: DefaultCollection,
		AppName:    DefaultAppName,
	}
}

// Repository stores tasks as documents in a MongoDB collection.
type Repository struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger
}

var _ domain.Driver = (*Repository)(nil)

// New parses opts.URL and builds a connected client. A missing or malformed
// URL, or a client that cannot be constructed, is a configuration error.
// Connecting does not wait for the server; an unreachable server shows up
// as failed operations later.
func New(ctx context.Context, opts Options) (*Repository, error) {
	if opts.URL == "" {
		return nil, apperrors.NewConfigurationError("MONGO_DB_URL", ConnectionFailureMessage, nil)
	}

	clientOpts := options.Client().ApplyURI(opts.URL)
	if opts.AppName != "" {
		clientOpts.SetAppName(opts.AppName)
	}
	if err := clientOpts.Validate(); err != nil {
		return nil, apperrors.NewConfigurationError("MONGO_DB_URL", ConnectionFailureMessage, err)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, apperrors.NewConfigurationError("MONGO_DB_URL", ConnectionFailureMessage, err)
	}

	return NewFromClient(client, opts), nil
}

// NewFromClient wraps an already connected client.
func NewFromClient(client *mongo.Client, opts Options) *Repository {
	if opts.Database == "" {
		opts.Database = DefaultDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}

	return &Repository{
		client:     client,
		collection: client.Database(opts.Database).Collection(opts.Collection),
		logger:     logging.Logger().With("backend", "mongodb", "namespace", opts.Database+"."+opts.Collection),
	}
}

// Close disconnects the client.
func (r *Repository) Close(ctx context.Context) error {
	if err := r.client.Disconnect(ctx); err != nil {
		return apperrors.NewDatabaseError("disconnect", err)
	}
	return nil
}

// Insert writes {title} and returns the hex form of the ObjectID the driver assigned.
func (r *Repository) Insert(ctx context.Context, title string) (string, bool) {
	result, err := r.collection.InsertOne(ctx, newTaskDocument(title))
	if err != nil {
		r.report("insert_task", apperrors.NewDatabaseError("insert task", err))
		return "", false
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		r.report("insert_task", apperrors.NewDatabaseError("read inserted id", nil).
			WithContext("inserted_id", result.InsertedID))
		return "", false
	}

	id := oid.Hex()
	r.logger.Debug("insert_task", "id", id)
	return id, true
}

// Get returns the task stored under id. Ids that are not 24 hex characters
// are rejected without a round trip to the server.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Task, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.report("get_task", apperrors.NewInvalidInputError("id", id, "not a valid object id"))
		return nil, false
	}

	var doc taskDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		r.report("get_task", apperrors.NewNotFoundError("task", id))
		return nil, false
	case err != nil:
		r.report("get_task", apperrors.NewDatabaseError("find task", err).WithContext("id", id))
		return nil, false
	}

	r.logger.Debug("get_task", "id", id)
	return doc.toDomain(), true
}

// report logs a failure that is about to be collapsed into an empty result.
func (r *Repository) report(op string, err error) {
	attrs := apperrors.LogAttrs(err, "id", "inserted_id", "identifier")
	if apperrors.ShouldLogError(err) {
		r.logger.Warn(op, attrs...)
		return
	}
	r.logger.Debug(op, attrs...)
}
