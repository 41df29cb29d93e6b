package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/loader"
)

const contentJSON = `{
  "achievements": [
    {"title": "Speaker", "description": "Gave a talk", "category": "community"},
    {"title": "Certified", "description": "Passed the exam", "category": "cert"}
  ],
  "projects": [
    {"title": "Billing", "problem": "slow", "solution": "cache", "outcome": "fast"},
    {"title": "Search", "problem": "bad", "solution": "index", "outcome": "good"},
    {"title": "Draft", "problem": "p"}
  ]
}`

const skillsJSON = `{"skillCategories": [
  {"category": "Backend", "skills": [{"name": "Go", "proficiency": 4.5, "notes": "services and CLIs"}]},
  {"category": "Data", "skills": [{"name": "Postgres", "proficiency": 7, "notes": "tuning"}]}
]}`

func newTestServer(t *testing.T, load bool) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "data.json"), []byte(contentJSON), 0o644)
	os.WriteFile(filepath.Join(dir, "skills.json"), []byte(skillsJSON), 0o644)

	a := app.New(app.Options{
		Loader: loader.New(
			&loader.FileSource{Path: filepath.Join(dir, "data.json")},
			&loader.FileSource{Path: filepath.Join(dir, "skills.json")},
			time.Second,
		),
	})
	if load {
		if _, err := a.Reload(context.Background()); err != nil {
			t.Fatalf("Reload: %v", err)
		}
	}
	return NewServer(a), dir
}

func call(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resultText(result), result.IsError
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"list_achievements", listAchievementsTool, "list_achievements"},
		{"list_skills", listSkillsTool, "list_skills"},
		{"get_skill", getSkillTool, "get_skill"},
		{"list_projects", listProjectsTool, "list_projects"},
		{"skill_cloud", skillCloudTool, "skill_cloud"},
		{"reload_content", reloadContentTool, "reload_content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv, _ := newTestServer(t, false)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
}

func TestNotLoaded(t *testing.T) {
	srv, _ := newTestServer(t, false)
	text, isErr := call(t, srv.handleListSkills, nil)
	if !isErr || !strings.Contains(text, "No portfolio content") {
		t.Errorf("got %q (error=%v), want not-loaded error", text, isErr)
	}
}

func TestHandleListAchievements(t *testing.T) {
	srv, _ := newTestServer(t, true)

	text, isErr := call(t, srv.handleListAchievements, nil)
	if isErr || !strings.Contains(text, "Found 2 achievement(s)") {
		t.Errorf("all achievements: %q", text)
	}
	if strings.Index(text, "Speaker") > strings.Index(text, "Certified") {
		t.Error("order not preserved")
	}

	text, _ = call(t, srv.handleListAchievements, map[string]any{"category": "CERT"})
	if !strings.Contains(text, "Certified") || strings.Contains(text, "Speaker") {
		t.Errorf("filtered achievements: %q", text)
	}
}

func TestHandleListSkills(t *testing.T) {
	srv, _ := newTestServer(t, true)

	text, _ := call(t, srv.handleListSkills, nil)
	for _, want := range []string{"## Backend", "- Go (4.5/5): services and CLIs", "- Postgres (5.0/5)"} {
		if !strings.Contains(text, want) {
			t.Errorf("skills missing %q in:\n%s", want, text)
		}
	}

	text, _ = call(t, srv.handleListSkills, map[string]any{"category": "ops"})
	if text != "No skills found." {
		t.Errorf("unknown category: %q", text)
	}
}

func TestHandleGetSkill(t *testing.T) {
	srv, _ := newTestServer(t, true)

	text, isErr := call(t, srv.handleGetSkill, map[string]any{"name": "go"})
	if isErr {
		t.Fatalf("unexpected tool error: %s", text)
	}
	for _, want := range []string{"Skill: Go", "Category: Backend", "Notes: services and CLIs", "Cloud position:"} {
		if !strings.Contains(text, want) {
			t.Errorf("get_skill missing %q in:\n%s", want, text)
		}
	}

	if _, isErr := call(t, srv.handleGetSkill, map[string]any{}); !isErr {
		t.Error("expected error for missing name")
	}
	if _, isErr := call(t, srv.handleGetSkill, map[string]any{"name": "COBOL"}); !isErr {
		t.Error("expected error for unknown skill")
	}
}

func TestHandleListProjects(t *testing.T) {
	srv, _ := newTestServer(t, true)

	text, _ := call(t, srv.handleListProjects, nil)
	if !strings.Contains(text, "Found 2 project(s)") || strings.Contains(text, "Draft") {
		t.Errorf("projects: %q", text)
	}

	text, _ = call(t, srv.handleListProjects, map[string]any{"limit": 1})
	if !strings.Contains(text, "Found 1 project(s)") || strings.Contains(text, "Search") {
		t.Errorf("limited projects: %q", text)
	}
}

func TestHandleSkillCloud(t *testing.T) {
	srv, _ := newTestServer(t, true)
	text, _ := call(t, srv.handleSkillCloud, nil)
	if !strings.Contains(text, "2 tag(s)") || !strings.Contains(text, "- Go at (") {
		t.Errorf("skill cloud: %q", text)
	}
}

func TestHandleReloadContent(t *testing.T) {
	srv, dir := newTestServer(t, false)

	text, isErr := call(t, srv.handleReloadContent, nil)
	if isErr || !strings.Contains(text, "2 achievement(s), 2 skill(s), 3 project(s)") {
		t.Errorf("reload: %q (error=%v)", text, isErr)
	}

	os.Remove(filepath.Join(dir, "skills.json"))
	if _, isErr := call(t, srv.handleReloadContent, nil); !isErr {
		t.Error("expected error when a source is missing")
	}
}

// resultText extracts the text from the first TextContent in a tool result.
func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
