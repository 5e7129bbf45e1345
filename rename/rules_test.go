package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		name    string
		want    string
		rule    string
		matched bool
	}{
		{name: "store.ts.ts", want: "store.ts", rule: "store.ts.ts", matched: true},
		{name: "background.tsx.2.txt", want: "background.tsx", rule: "background.tsx.2.txt", matched: true},
		{name: "tauri.conf2.txt", want: "tauri.conf.json", rule: "tauri.conf2.txt", matched: true},
		{name: "vite.config2.txt", want: "vite.config.ts", rule: "vite.config2.txt", matched: true},
		{name: "postcss.config2.txt", want: "postcss.config.js", rule: "postcss.config2.txt", matched: true},
		{name: "package.json2.txt", want: "package.json", rule: "strip 2.txt", matched: true},
		{name: "App.tsx2.txt", want: "App.tsx", rule: "strip 2.txt", matched: true},
		{name: "main.rs2.txt", want: "main.rs", rule: "strip 2.txt", matched: true},
		{name: "a2.txt.b2.txt", want: "a2.txt.b", rule: "strip 2.txt", matched: true},
		{name: "x2.txt", want: "x", rule: "strip 2.txt", matched: true},
		{name: "2.txt"},
		{name: "random.txt"},
		{name: "store.ts"},
		{name: "Store.ts.ts"},
		{name: "notes2.txt.bak"},
		{name: "readme2.TXT"},
		{name: ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rule, got, ok := Match(c.name)

			assert.Equal(t, c.matched, ok, "whether a rule matches %q", c.name)
			assert.Equal(t, c.want, got, "new name for %q", c.name)
			assert.Equal(t, c.rule, rule.Name, "rule that matches %q", c.name)
		})
	}
}

func TestRulesOrder(t *testing.T) {
	// Every exact-name rule except store.ts.ts also ends with the generic suffix,
	// so it must come before the generic rule to win.
	generic := rules[len(rules)-1]

	for _, rule := range rules[:len(rules)-1] {
		if rule.Name == "store.ts.ts" {
			continue
		}

		assert.True(t, generic.Matches(rule.Name), "%q should also satisfy the generic rule", rule.Name)

		_, got, ok := Match(rule.Name)

		assert.True(t, ok)
		assert.Equal(t, rule.Transform(rule.Name), got, "exact-name rule for %q should take precedence", rule.Name)
		assert.NotEqual(t, generic.Transform(rule.Name), got)
	}
}

func TestGenericRuleKeepsPrefix(t *testing.T) {
	prefixes := []string{"package.json", "tsconfig.node.json", "index.html", "Cargo.toml", ".gitignore", "a b c", "ü.md"}

	for _, prefix := range prefixes {
		_, got, ok := Match(prefix + genericSuffix)

		assert.True(t, ok, "%q should match", prefix+genericSuffix)
		assert.Equal(t, prefix, got)
	}
}

func TestRulesReturnsCopy(t *testing.T) {
	got := Rules()

	assert.Len(t, got, len(rules))
	assert.Equal(t, "store.ts.ts", got[0].Name)

	got[0] = Rule{Name: "clobbered", Matches: func(string) bool { return true }, Transform: func(string) string { return "x" }}

	_, newName, ok := Match("store.ts.ts")

	assert.True(t, ok)
	assert.Equal(t, "store.ts", newName, "changing the returned slice must not change the rule set")
	assert.Len(t, Rules(), len(rules))
	assert.Equal(t, "store.ts.ts", rules[0].Name)
}
