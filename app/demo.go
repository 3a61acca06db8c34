package app

import (
	"holdmenu/gesture"
	"holdmenu/menu"
	"holdmenu/ui"
)

// demoCard is one held item on the demo screen.
type demoCard struct {
	card   ui.Card
	items  []menu.Item
	params menu.ActionParams
	// bottom prefers a bottom transform origin, for items low on the screen.
	bottom bool
}

var demoCards = []demoCard{
	{
		card: ui.Card{Title: "Sunset", Subtitle: "Photo, 2 days ago", Icon: "▣"},
		items: []menu.Item{
			{Text: "Edit", Icon: "✎"},
			{Text: "Share", Icon: "↗", WithSeparator: true},
			{Text: "Delete", Icon: "✗", IsDestructive: true},
		},
	},
	{
		card: ui.Card{Title: "Groceries", Subtitle: "Note, 6 items", Icon: "≡"},
		items: []menu.Item{
			{Text: "Note", IsTitle: true},
			{Text: "Pin", Icon: "⚲"},
			{Text: "Duplicate", Icon: "⧉"},
			{Text: "Archive", Icon: "▤", Disabled: true},
		},
	},
	{
		card: ui.Card{Title: "Ada Lovelace", Subtitle: "Contact", Icon: "☺"},
		items: []menu.Item{
			{Text: "Call", Icon: "☎"},
			{Text: "Message", Icon: "✉"},
			{Text: "Copy number", Icon: "⧉"},
		},
		params: menu.ActionParams{"Copy number": {"+44 20 7946 0000"}},
	},
	{
		card: ui.Card{Title: "Road trip", Subtitle: "Playlist, 42 songs", Icon: "♫"},
		items: []menu.Item{
			{Text: "Play next", Icon: "▶"},
			{Text: "Add to queue", Icon: "+", WithSeparator: true},
			{Text: "Remove from library", Icon: "✗", IsDestructive: true},
		},
	},
	{
		// No actions: the press animation plays but no menu opens.
		card: ui.Card{Title: "Draft", Subtitle: "Nothing to do yet", Icon: "…"},
	},
	{
		card: ui.Card{Title: "Harbour", Subtitle: "Location", Icon: "⌖"},
		items: []menu.Item{
			{Text: "Directions", Icon: "➜"},
			{Text: "Share location", Icon: "↗"},
		},
		params: menu.ActionParams{"Directions": {"walking"}},
		bottom: true,
	},
}

func hintFor(t gesture.Trigger) string {
	switch t {
	case gesture.Tap:
		return "tap for actions"
	case gesture.DoubleTap:
		return "double-tap for actions"
	default:
		return "hold for actions"
	}
}
