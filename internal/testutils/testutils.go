// Package testutils provides record/replay HTTP clients for integration
// tests that talk to Google APIs. Set UPDATE_TESTS=true to record fresh
// responses with real credentials; otherwise cached responses are replayed.
package testutils

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	language "cloud.google.com/go/language/apiv1"
	"github.com/areknoster/hypert"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/genai"

	"github.com/datar-psa/runeval/gemini"
)

// ShouldUpdate returns true if tests should update cached HTTP responses
func ShouldUpdate() bool {
	return os.Getenv("UPDATE_TESTS") == "true"
}

// HypertClientConfig configures hypert client creation
type HypertClientConfig struct {
	TestDataDir string
	SubDir      string // Optional subdirectory for organizing test data
}

// NewHypertClient creates an http.Client that replays cached responses, or
// records live ones with OAuth2 credentials when in update mode.
func NewHypertClient(t *testing.T, config HypertClientConfig) *http.Client {
	testDataDir := config.TestDataDir
	if config.SubDir != "" {
		testDataDir = filepath.Join(testDataDir, config.SubDir)
	}

	namingScheme, err := hypert.NewContentHashNamingScheme(testDataDir)
	if err != nil {
		t.Fatalf("failed to create naming scheme: %v", err)
	}

	hypertClient := hypert.TestClient(t, ShouldUpdate(),
		hypert.WithNamingScheme(namingScheme),
		hypert.WithRequestValidator(hypert.ComposedRequestValidator(
			hypert.PathValidator(),
			hypert.QueryParamsValidator(),
			hypert.MethodValidator(),
		)),
	)

	if ShouldUpdate() {
		ctx := context.Background()
		creds, err := google.FindDefaultCredentials(ctx)
		if err != nil {
			t.Fatalf("failed to get default credentials: %v", err)
		}
		return oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, hypertClient), creds.TokenSource)
	}

	return hypertClient
}

// GoogleTestConfig configures Google client creation for tests
type GoogleTestConfig struct {
	Project  string
	Location string
	SubDir   string // Subdirectory for hypert test data
}

// DefaultGoogleTestConfig reads the test project settings from the environment.
func DefaultGoogleTestConfig(subDir string) GoogleTestConfig {
	return GoogleTestConfig{
		Project:  os.Getenv("GOOGLE_PROJECT_ID"),
		Location: os.Getenv("GOOGLE_REGION"),
		SubDir:   subDir,
	}
}

// NewGenaiClient creates a genai client backed by the hypert test client.
func NewGenaiClient(t *testing.T, config GoogleTestConfig) *genai.Client {
	ctx := context.Background()

	hypertClient := NewHypertClient(t, HypertClientConfig{
		TestDataDir: "testdata",
		SubDir:      config.SubDir,
	})

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:    genai.BackendVertexAI,
		Project:    config.Project,
		Location:   config.Location,
		HTTPClient: hypertClient,
	})
	if err != nil {
		t.Fatalf("failed to create genai client: %v", err)
	}

	return genaiClient
}

// NewLanguageClient creates a Cloud Natural Language client backed by the
// hypert test client, with the quota project header set in record mode.
func NewLanguageClient(t *testing.T, config GoogleTestConfig) *language.Client {
	ctx := context.Background()

	httpClient := NewHypertClient(t, HypertClientConfig{
		TestDataDir: "testdata",
		SubDir:      config.SubDir,
	})
	if ShouldUpdate() && config.Project != "" {
		httpClient = &http.Client{
			Transport: &quotaProjectTransport{
				base:      httpClient.Transport,
				projectID: config.Project,
			},
			Timeout: httpClient.Timeout,
		}
	}

	client, err := language.NewRESTClient(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		t.Fatalf("failed to create language client: %v", err)
	}
	return client
}

// NewGeminiGenerator creates a Gemini generator for testing
func NewGeminiGenerator(t *testing.T, config GoogleTestConfig, modelName string) *gemini.Generator {
	return gemini.NewGenerator(NewGenaiClient(t, config), modelName)
}

// NewGeminiEmbedder creates a Gemini embedder for testing
func NewGeminiEmbedder(t *testing.T, config GoogleTestConfig, modelName string) *gemini.Embedder {
	return gemini.NewEmbedder(NewGenaiClient(t, config), modelName)
}

// quotaProjectTransport adds the quota project header required by some
// Google Cloud APIs.
type quotaProjectTransport struct {
	base      http.RoundTripper
	projectID string
}

func (t *quotaProjectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Goog-User-Project", t.projectID)
	return t.base.RoundTrip(req)
}
