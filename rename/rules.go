package rename

import (
	"slices"
	"strings"
)

type (
	Rule struct {
		Name      string
		Matches   func(name string) bool
		Transform func(name string) string
	}
)

const genericSuffix = "2.txt"

// rules is evaluated top to bottom and the first match wins.
var rules = []Rule{
	exactName("store.ts.ts", "store.ts"),
	exactName("background.tsx.2.txt", "background.tsx"),
	exactName("tauri.conf2.txt", "tauri.conf.json"),
	exactName("vite.config2.txt", "vite.config.ts"),
	exactName("postcss.config2.txt", "postcss.config.js"),
	{
		Name: "strip " + genericSuffix,
		Matches: func(name string) bool {
			// "2.txt" on its own would leave an empty name behind.
			return len(name) > len(genericSuffix) && strings.HasSuffix(name, genericSuffix)
		},
		Transform: func(name string) string {
			return strings.TrimSuffix(name, genericSuffix)
		},
	},
}

func exactName(from, to string) Rule {
	return Rule{
		Name: from,
		Matches: func(name string) bool {
			return name == from
		},
		Transform: func(string) string {
			return to
		},
	}
}

// Rules returns a copy of the rule set in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// Match returns the first rule of [Rules] that applies to name and the name it produces.
// ok is false when no rule applies.
func Match(name string) (rule Rule, newName string, ok bool) {
	for i := range rules {
		if rules[i].Matches(name) {
			return rules[i], rules[i].Transform(name), true
		}
	}

	return Rule{}, "", false
}
