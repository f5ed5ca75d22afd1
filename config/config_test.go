package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/awantoch/beemchart/constants"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"output":{"dir":"out"},"blob":{"driver":"s3","bucket":"c","region":"r"},"http":{"host":"h","port":8080},"log":{"level":"debug"},"tracing":{"exporter":"stdout"}}`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.Output.Dir != "out" {
		t.Errorf("unexpected Output: %+v", c.Output)
	}
	if c.Blob.Driver != "s3" || c.Blob.Bucket != "c" || c.Blob.Region != "r" {
		t.Errorf("unexpected Blob: %+v", c.Blob)
	}
	if c.HTTP.Host != "h" || c.HTTP.Port != 8080 {
		t.Errorf("unexpected HTTP: %+v", c.HTTP)
	}
	if c.Log.Level != "debug" {
		t.Errorf("unexpected Log: %+v", c.Log)
	}
	if c.Tracing == nil || c.Tracing.Exporter != "stdout" {
		t.Errorf("unexpected Tracing: %+v", c.Tracing)
	}
}

func TestLoadConfig_Partial(t *testing.T) {
	c, err := LoadConfig(writeConfig(t, `{"http":{"port":9000}}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if c.HTTP.Port != 9000 {
		t.Errorf("unexpected HTTP: %+v", c.HTTP)
	}
	// Other fields should be zero-valued
	if c.Blob.Driver != "" || c.Output.Dir != "" || c.Tracing != nil {
		t.Errorf("expected zero values, got %+v", c)
	}
}

func TestLoadConfig_FileNotExist(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/path/config.json"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "not a json")); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(constants.EnvOutputDir, "")
	t.Setenv(constants.EnvBlobDriver, "")
	t.Setenv(constants.EnvHTTPPort, "")

	c, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Blob.Driver != constants.BlobDriverFilesystem || c.Blob.Directory != DefaultBlobDir {
		t.Errorf("unexpected Blob defaults: %+v", c.Blob)
	}
	if c.HTTP.Host != constants.DefaultHTTPHost || c.HTTP.Port != constants.DefaultHTTPPort {
		t.Errorf("unexpected HTTP defaults: %+v", c.HTTP)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(constants.EnvOutputDir, "charts")
	t.Setenv(constants.EnvBlobDriver, "s3")
	t.Setenv(constants.EnvHTTPPort, "4000")

	c, err := Load(writeConfig(t, `{"output":{"dir":"ignored"},"http":{"port":1}}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Output.Dir != "charts" {
		t.Errorf("expected env output dir, got %q", c.Output.Dir)
	}
	if c.Blob.Driver != "s3" || c.Blob.Directory != "" {
		t.Errorf("unexpected Blob: %+v", c.Blob)
	}
	if c.HTTP.Port != 4000 {
		t.Errorf("expected env port, got %d", c.HTTP.Port)
	}
}

func TestLoad_BadPortIgnored(t *testing.T) {
	t.Setenv(constants.EnvHTTPPort, "not-a-port")
	c, err := Load(writeConfig(t, `{"http":{"port":5000}}`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.HTTP.Port != 5000 {
		t.Errorf("expected file port to survive bad env value, got %d", c.HTTP.Port)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	if _, err := Load(writeConfig(t, "{")); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}
