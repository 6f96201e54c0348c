package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `daypack turns a pile of study material into a day-by-day learning schedule.

Core concepts:
- Roadmap: a course broken into numbered days, owned by one user.
- Day: an ordered list of sessions; a day is complete when it has sessions and all of them are complete.
- Session: one unit of study (a video or custom task) with a duration in minutes. Session IDs are stable across moves and rebalances.
- Daily limit: the minute budget per day. Packing is greedy and order-preserving; a single session longer than the limit still gets its own day.

Typical workflow:
1) Build: import_playlist with a YouTube playlist URL, or create_roadmap with explicit items.
2) Orient: list_roadmaps, then get_roadmap for the full schedule; get_stats for progress.
3) Adjust: move_session / reorder_session / add_session / delete_session to shape days; add_day / delete_day to shape the calendar.
4) Track: toggle_session as sessions are finished. Day completion is derived, never set directly.
5) Repace: rebalance_roadmap with a new daily limit repacks everything while keeping order and completion. get_limit_presets suggests sensible limits.
6) Share: export_calendar produces an .ics file with one event per study day.

Transport notes:
- HTTP: authenticate with a bearer token in the Authorization header.
- Stdio: single-user, no auth.

Docs:
- daypack://docs/index (what to read when)
- daypack://docs/concepts (glossary + invariants)
- daypack://docs/workflows/import-and-pace
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "daypack://docs/index",
		Name:        "docs_index",
		Title:       "daypack docs index",
		Description: "Entry point for agent-facing docs: what exists and what to read.",
		Content: `# daypack: Agent Docs Index

## Quick start (no deep docs)

1. ` + "`import_playlist`" + ` or ` + "`create_roadmap`" + ` to build a schedule.
2. ` + "`get_roadmap`" + ` to see the day-by-day plan; ` + "`get_stats`" + ` for progress.
3. ` + "`toggle_session`" + ` as work gets done.
4. ` + "`rebalance_roadmap`" + ` when the daily pace needs to change.

## Docs (read on demand)

- ` + "`daypack://docs/concepts`" + ` — glossary + scheduling invariants.
- ` + "`daypack://docs/workflows/import-and-pace`" + ` — the import, adjust, and repace loop.

## Capabilities & intentional limitations

- Without a YouTube API key configured, ` + "`import_playlist`" + ` serves a fixed demo playlist (the response is marked ` + "`is_demo`" + `).
- Moving or adding sessions can push a day over its minute budget; run ` + "`rebalance_roadmap`" + ` to repack.
`,
	},
	{
		URI:         "daypack://docs/concepts",
		Name:        "docs_concepts",
		Title:       "Concepts and invariants",
		Description: "Glossary of roadmap, day, session, and the scheduling rules that always hold.",
		Content: `# Concepts

- **Roadmap**: one course for one user. Carries a daily limit (minutes) and an optional start date.
- **Day**: numbered 1..N with no gaps, even after deleting days. Holds an ordered session list.
- **Session**: stable identity. Its ID, title, duration, and completion survive every move and rebalance.
- **Daily limit**: positive minutes. Presets are 60, 90, 120, and 180; the default is 60.

# Invariants

- Packing is greedy and order-preserving: sessions fill a day until the next one would overflow the limit, then a new day starts.
- A session longer than the whole limit still gets placed, alone on its own day.
- Day completion is derived: a day is complete when it is non-empty and every session in it is complete. There is no way to set it directly.
- Rebalancing flattens all sessions in (day, order) order and repacks them. No session is ever created, dropped, or reordered by a rebalance.
- The current day is derived from the start date; day 1 is the start date itself.
`,
	},
	{
		URI:         "daypack://docs/workflows/import-and-pace",
		Name:        "docs_workflow_import_and_pace",
		Title:       "Workflow: import and pace",
		Description: "The normal loop: import a playlist, shape the schedule, track progress, repace.",
		Content: `# Workflow: import and pace

1. ` + "`import_playlist`" + ` with the playlist URL. Pass ` + "`daily_limit_minutes`" + ` if the user has a pace in mind, otherwise the default (60) applies.
2. Show the user the plan from ` + "`get_roadmap`" + `. The ` + "`is_today`" + ` flag marks the current day when a start date is set.
3. Shape it: ` + "`move_session`" + ` to pull content forward or push it back, ` + "`reorder_session`" + ` to rearrange a single day, ` + "`add_session`" + ` for exercises or reading, ` + "`delete_session`" + ` for skippable content.
4. As the user studies, ` + "`toggle_session`" + `. Use ` + "`get_stats`" + ` to report progress.
5. Too intense or too slow? ` + "`get_limit_presets`" + `, pick a new limit, ` + "`rebalance_roadmap`" + `. Completed work stays completed.
6. ` + "`export_calendar`" + ` at any point for an .ics the user can import into their calendar app.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
