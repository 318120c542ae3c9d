package initializers

import (
	"testing"

	"github.com/Kariqs/storefront-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("JWT_KEY", "key")
	t.Setenv("JWT_ISSUER", "issuer")
	t.Setenv("DATABASE_URL", "user:pass@tcp(localhost:3306)/store")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("S3_BUCKET", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, "wwwroot/Images", cfg.UploadDir)
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:4200, https://shop.example.com ,")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("S3_BUCKET", "images")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []string{"http://localhost:4200", "https://shop.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "images", cfg.S3Bucket)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing key", env: map[string]string{"JWT_KEY": ""}},
		{name: "missing issuer", env: map[string]string{"JWT_ISSUER": ""}},
		{name: "missing database url", env: map[string]string{"DATABASE_URL": ""}},
		{name: "s3 without bucket", env: map[string]string{"STORAGE_DRIVER": "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.ErrorIs(t, err, utils.ErrConfiguration)
		})
	}
}

func TestLoadConfigSQLiteNeedsNoURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()
	assert.NoError(t, err)
}

func TestConnectToDBRejectsUnknownDriver(t *testing.T) {
	_, err := ConnectToDB(Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestConnectToDBSQLite(t *testing.T) {
	db, err := ConnectToDB(Config{DBDriver: "sqlite", DatabaseURL: ":memory:"})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, SyncDatabase(db))
	assert.True(t, db.Migrator().HasTable("order_items"))
}
