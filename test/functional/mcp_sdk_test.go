package functional_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/seywell/daypack/internal/domain/roadmap"
	"github.com/seywell/daypack/internal/mcp"
	"github.com/seywell/daypack/internal/playlist"
	"github.com/seywell/daypack/internal/sqlite"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

// logBuffer collects log output from the server goroutine.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// newSDKSession wires the full stack behind an in-memory MCP transport
// pair and returns a connected client session.
func newSDKSession(t *testing.T, logger *slog.Logger) *sdkmcp.ClientSession {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	svc := roadmap.NewService(sqlite.NewRoadmapRepository(db), nil)
	handler := mcp.NewHandler(svc, playlist.NewClient("", logger))

	server := mcp.NewServer(mcp.Config{
		Handler:       handler,
		TransportMode: "stdio",
		Logger:        logger,
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := sdkmcp.NewClient(&sdkmcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
		serverSession.Close()
		cancel()
	})

	return session
}

func callSDKTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any) json.RawMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "CallTool %s failed", name)
	require.False(t, result.IsError, "Tool %s returned error", name)
	require.NotEmpty(t, result.Content, "Tool %s returned no content", name)

	for _, content := range result.Content {
		if textContent, ok := content.(*sdkmcp.TextContent); ok {
			return json.RawMessage(textContent.Text)
		}
	}
	t.Fatalf("Tool %s returned no text content", name)
	return nil
}

func TestSDK_RoadmapLifecycle(t *testing.T) {
	session := newSDKSession(t, nil)

	createResp := callSDKTool(t, session, "create_roadmap", map[string]any{
		"title":               "SDK Course",
		"daily_limit_minutes": 60,
		"items": []map[string]any{
			{"title": "Part 1", "duration_minutes": 40},
			{"title": "Part 2", "duration_minutes": 40},
			{"title": "Part 3", "duration_minutes": 20},
		},
	})
	var created roadmapView
	require.NoError(t, json.Unmarshal(createResp, &created))
	require.NotEmpty(t, created.ID)
	require.Len(t, created.Days, 2)
	require.Len(t, created.Days[0].Sessions, 1)
	require.Len(t, created.Days[1].Sessions, 2)

	// The no-auth middleware pins everything to one user, so the
	// roadmap shows up in a listing on the same session.
	listResp := callSDKTool(t, session, "list_roadmaps", nil)
	var listing struct {
		Roadmaps []struct {
			ID            string `json:"id"`
			TotalSessions int    `json:"total_sessions"`
		} `json:"roadmaps"`
	}
	require.NoError(t, json.Unmarshal(listResp, &listing))
	require.Len(t, listing.Roadmaps, 1)
	require.Equal(t, created.ID, listing.Roadmaps[0].ID)
	require.Equal(t, 3, listing.Roadmaps[0].TotalSessions)

	reorderResp := callSDKTool(t, session, "reorder_session", map[string]any{
		"roadmap_id":   created.ID,
		"session_id":   created.Days[1].Sessions[0].ID,
		"target_index": 1,
	})
	var reordered roadmapView
	require.NoError(t, json.Unmarshal(reorderResp, &reordered))
	require.Equal(t, created.Days[1].Sessions[0].ID, reordered.Days[1].Sessions[1].ID)
}

func TestSDK_ToolCatalog(t *testing.T) {
	session := newSDKSession(t, nil)

	initResult := session.InitializeResult()
	require.NotNil(t, initResult)
	require.NotNil(t, initResult.ServerInfo)
	require.Equal(t, "daypack", initResult.ServerInfo.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tools.Tools), 17)

	toolMap := make(map[string]*sdkmcp.Tool)
	for _, tool := range tools.Tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range []string{
		"create_roadmap", "import_playlist", "list_roadmaps", "get_roadmap",
		"move_session", "reorder_session", "toggle_session",
		"rebalance_roadmap", "get_stats", "export_calendar", "get_limit_presets",
	} {
		require.Contains(t, toolMap, name)
		require.NotEmpty(t, toolMap[name].Description)
	}
}

func TestSDK_DocResources(t *testing.T) {
	session := newSDKSession(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resources, err := session.ListResources(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, resources.Resources)

	uris := make(map[string]*sdkmcp.Resource, len(resources.Resources))
	for _, r := range resources.Resources {
		uris[r.URI] = r
	}

	expected := []string{
		"daypack://docs/index",
		"daypack://docs/concepts",
		"daypack://docs/workflows/import-and-pace",
	}
	for _, uri := range expected {
		r, ok := uris[uri]
		require.True(t, ok, "missing expected doc resource: %s", uri)
		require.NotEmpty(t, r.Name)
		require.Equal(t, "text/markdown", r.MIMEType)
		require.Greater(t, r.Size, int64(0))
	}

	read, err := session.ReadResource(ctx, &sdkmcp.ReadResourceParams{URI: "daypack://docs/index"})
	require.NoError(t, err)
	require.NotEmpty(t, read.Contents)
	require.Equal(t, "daypack://docs/index", read.Contents[0].URI)
	require.Equal(t, "text/markdown", read.Contents[0].MIMEType)
	require.Contains(t, read.Contents[0].Text, "Agent Docs Index")
}

func TestSDK_TrafficLogging(t *testing.T) {
	buf := &logBuffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	session := newSDKSession(t, logger)

	_ = callSDKTool(t, session, "list_roadmaps", nil)

	require.Eventually(t, func() bool {
		text := buf.String()
		return strings.Contains(text, `msg="mcp traffic"`) &&
			strings.Contains(text, "stage=request") &&
			strings.Contains(text, "stage=response") &&
			strings.Contains(text, "user_id=default")
	}, 5*time.Second, 100*time.Millisecond)
}
