package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("prints the title of a stored task", func(t *testing.T) {
		app, driver, out := setupTestApp(t)
		id, ok := driver.Insert(ctx, "Buy milk")
		require.True(t, ok)

		err := NewGetCommand(app).Execute(ctx, []string{id})
		require.NoError(t, err)
		assert.Equal(t, "title: Buy milk\n", out.String())
	})

	t.Run("absent id", func(t *testing.T) {
		app, _, out := setupTestApp(t)

		err := NewGetCommand(app).Execute(ctx, []string{"000000000000000000000000"})
		require.NoError(t, err)
		assert.Equal(t, "No entry found.\n", out.String())
	})

	t.Run("malformed id prints the same message", func(t *testing.T) {
		app, _, out := setupTestApp(t)

		err := NewGetCommand(app).Execute(ctx, []string{"not-an-id"})
		require.NoError(t, err)
		assert.Equal(t, "No entry found.\n", out.String())
	})

	t.Run("wrong argument count", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		err := NewGetCommand(app).Execute(ctx, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "usage: task get")
	})
}
