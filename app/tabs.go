package app

import "switcherpanel/ui"

func demoTabs() []ui.Tab {
	return []ui.Tab{
		{
			Title: "Inbox",
			Lines: []string{
				"Review layout constraints for compact terminals",
				"Reply to the release thread",
				"Triage new bug reports",
				"Update the shadow glyph palette",
			},
		},
		{
			Title: "Today",
			Lines: []string{
				"09:30  Standup",
				"11:00  Pairing on the settle animation",
				"14:00  Design review",
			},
		},
		{
			Title: "Upcoming",
			Lines: []string{
				"Mon  Ship v0.2",
				"Wed  Drop the legacy key bindings",
				"Fri  Retro",
			},
		},
		{
			Title: "Archive",
			Lines: []string{
				"Measure the switcher with margins",
				"Velocity tracker window",
			},
		},
	}
}
