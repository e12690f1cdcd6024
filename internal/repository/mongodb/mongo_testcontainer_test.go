//go:build integration

package mongodb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupMongoTestcontainer starts a throwaway MongoDB and returns a repository
// bound to a database unique to the test.
func setupMongoTestcontainer(t *testing.T) (*Repository, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForListeningPort("27017/tcp").WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Skipf("Failed to start MongoDB testcontainer: %v", err)
	}

	url, err := container.ConnectionString(ctx)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to get MongoDB connection string: %v", err)
	}

	opts := DefaultOptions(url)
	opts.Database = fmt.Sprintf("task_%d", time.Now().UnixNano())

	repo, err := New(ctx, opts)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to create repository: %v", err)
	}

	t.Logf("MongoDB container started at: %s (database: %s)", url, opts.Database)

	cleanup := func() {
		ctx := context.Background()
		repo.collection.Database().Drop(ctx)
		repo.Close(ctx)
		if terminateErr := container.Terminate(ctx); terminateErr != nil {
			t.Logf("Failed to terminate container: %v", terminateErr)
		}
	}

	return repo, cleanup
}
