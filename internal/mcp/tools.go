package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listAchievementsTool defines the list_achievements MCP tool.
var listAchievementsTool = mcp.NewTool("list_achievements",
	mcp.WithDescription("List the portfolio achievements in display order."),
	mcp.WithString("category",
		mcp.Description("Only return achievements in this category"),
	),
)

// listSkillsTool defines the list_skills MCP tool.
var listSkillsTool = mcp.NewTool("list_skills",
	mcp.WithDescription("List skills grouped by category with their 0-5 proficiency."),
	mcp.WithString("category",
		mcp.Description("Only return skills of this category"),
	),
)

// getSkillTool defines the get_skill MCP tool.
var getSkillTool = mcp.NewTool("get_skill",
	mcp.WithDescription("Get the notes, proficiency and skill-cloud position of one skill."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Skill name, case-insensitive"),
	),
)

// listProjectsTool defines the list_projects MCP tool.
var listProjectsTool = mcp.NewTool("list_projects",
	mcp.WithDescription("List the projects shown in the carousel with problem, solution and outcome."),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of projects to return (default all)"),
	),
)

// skillCloudTool defines the skill_cloud MCP tool.
var skillCloudTool = mcp.NewTool("skill_cloud",
	mcp.WithDescription("Get the skill cloud layout: sphere coordinates and animation parameters of every tag."),
)

// reloadContentTool defines the reload_content MCP tool.
var reloadContentTool = mcp.NewTool("reload_content",
	mcp.WithDescription("Reload portfolio content from its configured sources."),
)
