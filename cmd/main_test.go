package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"family_shopping/internal/middleware"
	"family_shopping/internal/model"
	"family_shopping/pkg/database"
)

func setupCLIEnv(t *testing.T) string {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "family_shopping.db")
	t.Setenv("FS_DATABASE_DSN", dsn)
	t.Setenv("FS_DATABASE_DRIVER", "sqlite")
	t.Setenv("FS_LOG_LEVEL", "error")
	t.Setenv("FS_DATABASE_LOG_LEVEL", "silent")
	return dsn
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"family-shopping"}, args...))
	return out.String(), err
}

func TestCLI_Migrate(t *testing.T) {
	setupCLIEnv(t)

	out, err := runCLI(t, "migrate")
	require.NoError(t, err)
	for _, table := range []string{"stores", "products", "recipes", "shopping_items"} {
		assert.Contains(t, out, table)
	}
}

func TestCLI_Purge(t *testing.T) {
	dsn := setupCLIEnv(t)

	db, err := database.InitDB(database.Options{Driver: database.DriverSQLite, DSN: dsn, LogLevel: "silent"}, model.All()...)
	require.NoError(t, err)
	product := &model.Product{Name: "Milk"}
	require.NoError(t, db.Create(product).Error)
	old := time.Now().UTC().Add(-72 * time.Hour)
	recent := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, db.Create(&model.ShoppingItem{ProductID: product.ID, Quantity: 1, IsPurchased: true, PurchasedAt: &old}).Error)
	require.NoError(t, db.Create(&model.ShoppingItem{ProductID: product.ID, Quantity: 1, IsPurchased: true, PurchasedAt: &recent}).Error)
	require.NoError(t, database.Close(db))

	out, err := runCLI(t, "purge", "--keep-days", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 purchased items")

	_, err = runCLI(t, "purge", "--keep-days", "-1")
	assert.Error(t, err)
}

func TestCLI_Token(t *testing.T) {
	setupCLIEnv(t)

	_, err := runCLI(t, "token", "--member", "alex")
	assert.ErrorContains(t, err, "auth is disabled")

	t.Setenv("FS_AUTH_JWT_SECRET", "cli-secret")
	out, err := runCLI(t, "token", "--member", "alex")
	require.NoError(t, err)

	claims, err := middleware.ParseToken(&middleware.JWTConfig{
		SecretKey: "cli-secret",
		Issuer:    "family-shopping",
	}, strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "alex", claims.Member)
}
