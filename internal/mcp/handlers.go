package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/folio/internal/app"
	"github.com/ziadkadry99/folio/internal/content"
)

const notLoaded = "No portfolio content is loaded. Check the configured sources and run `folio check`."

// loaded returns the current snapshot, or a tool error result when the last
// load failed.
func (s *Server) loaded() (*app.Snapshot, *mcp.CallToolResult) {
	snap := s.app.Current()
	if !snap.OK() {
		msg := notLoaded
		if snap.Failure != nil {
			msg += "\nLast error: " + snap.Failure.Error()
		}
		return nil, mcp.NewToolResultError(msg)
	}
	return snap, nil
}

func (s *Server) handleListAchievements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := s.loaded()
	if errResult != nil {
		return errResult, nil
	}
	category := request.GetString("category", "")

	var sb strings.Builder
	n := 0
	for _, a := range snap.Model.Achievements {
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		n++
		sb.WriteString(fmt.Sprintf("\n%d. %s\n", n, a.Title))
		if a.Category != "" {
			sb.WriteString(fmt.Sprintf("   Category: %s\n", a.Category))
		}
		sb.WriteString(fmt.Sprintf("   %s\n", a.Description))
	}
	if n == 0 {
		return mcp.NewToolResultText("No achievements found."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Found %d achievement(s):\n", n) + sb.String()), nil
}

func (s *Server) handleListSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := s.loaded()
	if errResult != nil {
		return errResult, nil
	}
	category := request.GetString("category", "")

	var sb strings.Builder
	for _, c := range snap.Model.Skills.Categories {
		if category != "" && !strings.EqualFold(c.Category, category) {
			continue
		}
		if len(c.Skills) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n## %s\n", c.Category))
		for _, sk := range c.Skills {
			sb.WriteString(fmt.Sprintf("- %s (%.1f/%d)", sk.Name, sk.ClampedProficiency(), content.MaxProficiency))
			if sk.Notes != "" {
				sb.WriteString(": " + sk.Notes)
			}
			sb.WriteString("\n")
		}
	}
	if sb.Len() == 0 {
		return mcp.NewToolResultText("No skills found."), nil
	}
	return mcp.NewToolResultText(strings.TrimPrefix(sb.String(), "\n")), nil
}

func (s *Server) handleGetSkill(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}
	snap, errResult := s.loaded()
	if errResult != nil {
		return errResult, nil
	}

	for _, c := range snap.Model.Skills.Categories {
		for _, sk := range c.Skills {
			if !strings.EqualFold(sk.Name, name) {
				continue
			}
			var sb strings.Builder
			sb.WriteString(fmt.Sprintf("Skill: %s\n", sk.Name))
			sb.WriteString(fmt.Sprintf("Category: %s\n", c.Category))
			sb.WriteString(fmt.Sprintf("Proficiency: %.1f/%d\n", sk.ClampedProficiency(), content.MaxProficiency))
			if sk.Notes != "" {
				sb.WriteString(fmt.Sprintf("Notes: %s\n", sk.Notes))
			}
			for _, p := range snap.Cloud {
				if p.SkillName == sk.Name {
					sb.WriteString(fmt.Sprintf("Cloud position: (%.1f, %.1f, %.1f)\n", p.Position.X, p.Position.Y, p.Position.Z))
					break
				}
			}
			return mcp.NewToolResultText(sb.String()), nil
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("No skill named %q.", name)), nil
}

func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := s.loaded()
	if errResult != nil {
		return errResult, nil
	}
	limit := request.GetInt("limit", 0)

	var complete []content.Project
	for _, p := range snap.Model.Projects {
		if p.Complete() {
			complete = append(complete, p)
		}
	}
	if len(complete) == 0 {
		return mcp.NewToolResultText("No projects found."), nil
	}
	if limit > 0 && limit < len(complete) {
		complete = complete[:limit]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d project(s):\n", len(complete)))
	for i, p := range complete {
		sb.WriteString(fmt.Sprintf("\n--- Project %d: %s ---\n", i+1, p.Title))
		sb.WriteString(fmt.Sprintf("Problem: %s\n", p.Problem))
		sb.WriteString(fmt.Sprintf("Solution: %s\n", p.Solution))
		sb.WriteString(fmt.Sprintf("Outcome: %s\n", p.Outcome))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleSkillCloud(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, errResult := s.loaded()
	if errResult != nil {
		return errResult, nil
	}
	if len(snap.Cloud) == 0 {
		return mcp.NewToolResultText("The skill cloud is empty."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d tag(s) on the sphere:\n", len(snap.Cloud)))
	for _, p := range snap.Cloud {
		sb.WriteString(fmt.Sprintf("- %s at (%.1f, %.1f, %.1f), drift %.1fs offset %.1fs\n",
			p.SkillName, p.Position.X, p.Position.Y, p.Position.Z,
			p.Animation.DurationSeconds, p.Animation.PhaseOffsetSeconds))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func (s *Server) handleReloadContent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.app.Reload(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reload failed: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf(
		"Reloaded snapshot %s: %d achievement(s), %d skill(s), %d project(s).",
		snap.ID, len(snap.Model.Achievements), snap.Model.SkillCount(), len(snap.Model.Projects),
	)), nil
}
