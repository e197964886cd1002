// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks translation keys for consistency. It scans the Go source
// for i18n.T() calls and compares them against the YAML locale files,
// reporting keys used but undefined, keys missing from secondary locales and
// orphaned keys defined but never used.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func main() {
	os.Exit(run(projectRoot, localesDir, os.Stdout))
}

// result is the outcome of one lint pass.
type result struct {
	Undefined []string            // used in code, absent from the primary locale
	Missing   map[string][]string // locale file -> keys absent from it
	Orphaned  []string            // in the primary locale, never used
}

func (r result) failed() bool {
	if len(r.Undefined) > 0 {
		return true
	}
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return true
		}
	}
	return false
}

// run lints root against the locale files in locales and writes a report to
// w. It returns the process exit code.
func run(root, locales string, w io.Writer) int {
	res, err := lint(root, locales)
	if err != nil {
		fmt.Fprintf(w, "❌ %v\n", err)
		return 1
	}

	section := func(title string, keys []string) {
		fmt.Fprintf(w, "--- %s ---\n", title)
		if len(keys) == 0 {
			fmt.Fprintln(w, "  ✨ None found.")
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}

	section("Undefined keys (used in code, not in "+primaryLocale+")", res.Undefined)
	files := make([]string, 0, len(res.Missing))
	for f := range res.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		section("Missing keys in "+f, res.Missing[f])
	}
	section("Orphaned keys (in "+primaryLocale+", never used)", res.Orphaned)

	if res.failed() {
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
		return 1
	}
	fmt.Fprintln(w, "✅ All translation files are consistent!")
	return 0
}

func lint(root, locales string) (result, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return result{}, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return result{}, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return result{}, err
	}

	res := result{Missing: map[string][]string{}}
	res.Undefined = difference(used, primary)
	res.Orphaned = difference(primary, used)
	for _, f := range files {
		if filepath.Base(f) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(f)
		if err != nil {
			return result{}, fmt.Errorf("loading %s: %w", f, err)
		}
		res.Missing[filepath.Base(f)] = difference(primary, keys)
	}
	return res, nil
}

// findUsedKeys scans non-test .go files under root for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "tools", "_examples", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range keyCallRe.FindAllStringSubmatch(string(content), -1) {
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a locale file and returns its message IDs. Nested
// maps are flattened with dots.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var node map[string]any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", node, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		keys[prefix] = struct{}{}
		return
	}
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flattenYAML(key, v, keys)
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
