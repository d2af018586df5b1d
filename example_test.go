package matter_test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/avask/matter"
)

// Example demonstrates reading front matter metadata merged over defaults.
func Example() {
	dir, err := os.MkdirTemp("", "matter-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	article := filepath.Join(dir, "article.md")
	content := "---\ntitle: Front Matter in Go\ndraft: true\n---\nThe article body.\n"
	if err := os.WriteFile(article, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}

	defaults := map[string]any{"author": "unknown", "draft": false}

	cfg, err := matter.ReadConfig(article, defaults)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Title: %s\n", cfg["title"])
	fmt.Printf("Author: %s\n", cfg["author"])
	fmt.Printf("Draft: %v\n", cfg["draft"])

	body, err := matter.ReadContents(article)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Body: %s", body)

	// Output:
	// Title: Front Matter in Go
	// Author: unknown
	// Draft: true
	// Body: The article body.
}

// ExampleReadConfig_shadow shows sidecar metadata for a binary file.
func ExampleReadConfig_shadow() {
	dir, err := os.MkdirTemp("", "matter-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	image := filepath.Join(dir, "photo.jpeg")
	if err := os.WriteFile(image, []byte{0xff, 0xd8, 0xff}, 0644); err != nil {
		log.Fatal(err)
	}
	shadow := matter.ShadowConfigPath(image, "")
	if err := os.WriteFile(shadow, []byte("caption: sunset\n"), 0644); err != nil {
		log.Fatal(err)
	}

	cfg, err := matter.ReadConfig(image, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cfg["caption"])

	// Output:
	// sunset
}

func ExampleShadowConfigPath() {
	fmt.Println(matter.ShadowConfigPath("document.pdf", ""))
	fmt.Println(matter.ShadowConfigPath("image.png", "json"))

	// Output:
	// document.yml
	// image.json
}

func ExampleMerge() {
	defaults := map[string]any{
		"site": map[string]any{"name": "notes", "theme": "plain"},
		"tags": []any{"draft"},
	}
	overrides := map[string]any{
		"site": map[string]any{"theme": "dark"},
		"tags": []any{"published"},
	}

	merged := matter.Merge(defaults, overrides)

	site := merged["site"].(map[string]any)
	fmt.Println(site["name"], site["theme"])
	fmt.Println(merged["tags"])

	// Output:
	// notes dark
	// [published]
}

func ExampleParseConfig() {
	cfg, err := matter.ParseConfig([]byte("title: My Article\nauthor: John\n"), map[string]any{"draft": false})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(cfg["title"], cfg["author"], cfg["draft"])

	// Output:
	// My Article John false
}
