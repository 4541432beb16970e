package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionLess(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"older patch", "v1.2.2", "v1.2.3", true},
		{"same version", "v1.2.3", "v1.2.3", false},
		{"newer local build", "v2.0.0", "v1.9.9", false},
		{"missing v prefix", "1.2.2", "v1.2.3", true},
		{"prerelease older than release", "v1.2.3-rc1", "v1.2.3", true},
		{"release newer than prerelease", "v1.2.3", "v1.2.3-rc1", false},
		{"older minor with double digits", "v1.9.0", "v1.10.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionLess(tt.current, tt.latest))
		})
	}
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/nvasanth/candex/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	t.Run("update available", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.4.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v1.4.0", result.ReleaseURL)
	})

	t.Run("already current", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.4.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("prerelease not offered a downgrade", func(t *testing.T) {
		// A rc build sees its own release as the upgrade, never the
		// other way round.
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.4.0-rc1"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})
}
