// Package matter reads file metadata from YAML front matter headers and from
// shadow (sidecar) configuration files, merging it over caller defaults.
//
// Quick Start:
//
//	defaults := map[string]any{"author": "unknown", "draft": false}
//
//	cfg, err := matter.ReadConfig("article.md", defaults)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg["title"], cfg["author"])
//
// A file whose first three bytes are "---" carries a front matter header,
// terminated by a line holding "---" or "...". Files that cannot embed a
// header (binaries, images) use a shadow file instead: article.yml next to
// article.pdf. When both exist, the shadow file wins.
//
// See example_test.go for detailed usage.
package matter
