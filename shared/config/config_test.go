package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coursehub/forumtree/shared/threadtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPublic = `api_base_url: http://api:8080/api
listen_addr: ":8081"
request_timeout: 5s
log_level: debug
cors_allowed_origins: ["https://lms.example.edu"]
thread_tree:
  max_depth: 50
  on_orphan: root
  on_duplicate_id: error
  indent_unit: 24
`

func writeConfig(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfig(t, validPublic, "jwt_secret: 'k'\n")

	cfg := MustLoad(dir)

	assert.Equal(t, "http://api:8080/api", cfg.Public.ApiBaseURL)
	assert.Equal(t, 5*time.Second, cfg.Public.RequestTimeout)
	assert.Equal(t, []string{"https://lms.example.edu"}, cfg.Public.CorsAllowedOrigins)
	assert.Equal(t, 24, cfg.Public.ThreadTree.IndentUnit)
	assert.Equal(t, "k", cfg.Private.JwtSecret)
	assert.Equal(t, threadtree.Options{
		OnOrphan:      threadtree.OrphanAsRoot,
		OnDuplicateId: threadtree.DuplicateError,
		MaxDepth:      50,
	}, cfg.Public.ThreadTree.Options())
}

func TestMustLoad_Panics(t *testing.T) {
	tests := []struct {
		name    string
		public  string
		private string
	}{
		{
			name:    "missing api url",
			public:  "listen_addr: ':8081'\nrequest_timeout: 5s\n",
			private: "jwt_secret: 'k'\n",
		},
		{
			name:    "missing jwt secret",
			public:  validPublic,
			private: "jwt_secret: ''\n",
		},
		{
			name:    "unknown orphan policy",
			public:  "api_base_url: http://api:8080\nlisten_addr: ':8081'\nrequest_timeout: 5s\nthread_tree:\n  on_orphan: keep\n",
			private: "jwt_secret: 'k'\n",
		},
		{
			name:    "unknown key",
			public:  validPublic + "threads_per_page: 20\n",
			private: "jwt_secret: 'k'\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.public, tt.private)
			assert.Panics(t, func() { MustLoad(dir) })
		})
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.Panics(t, func() { MustLoad(t.TempDir()) })
}

func TestMustLoad_ShippedConfig(t *testing.T) {
	cfg := MustLoad(filepath.Join("..", "..", "config"))

	assert.Equal(t, 20, cfg.Public.ThreadTree.IndentUnit)
	assert.NotEmpty(t, cfg.Public.LoginURL)
	assert.Equal(t, threadtree.OrphanDrop, cfg.Public.ThreadTree.Options().OnOrphan)
}
