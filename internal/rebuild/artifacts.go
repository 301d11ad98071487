// Package rebuild turns planning output into on-disk build artifacts and,
// when a plan is large enough to need incremental regeneration, re-runs the
// whole pass on a cron schedule so published artifacts track registry and
// market changes without full redeploys.
package rebuild

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ezhulati/choose-my-power-sub003/internal/planner"
	"github.com/ezhulati/choose-my-power-sub003/internal/sitemap"
)

// File permissions for emitted artifacts.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// PathEntry is one line of the path list consumed by the static build tool.
type PathEntry struct {
	Path     string  `json:"path"`
	Tier     int     `json:"tier"`
	Priority float64 `json:"priority"`
}

// planArtifact is the on-disk shape of plan.json: the plan header plus the
// full path list.
type planArtifact struct {
	Plan  *planner.Plan `json:"plan"`
	Paths []PathEntry   `json:"paths"`
}

// Artifacts writes build artifacts under one output directory.
type Artifacts struct {
	outDir string
}

// NewArtifacts creates a writer rooted at outDir.
func NewArtifacts(outDir string) *Artifacts {
	return &Artifacts{outDir: outDir}
}

// WritePlan writes plan.json: the plan header and the {path, tier, priority}
// list the static build tool consumes.
func (a *Artifacts) WritePlan(plan *planner.Plan, pages []planner.PlannedPage) error {
	entries := make([]PathEntry, 0, len(pages))
	for _, page := range pages {
		entries = append(entries, PathEntry{
			Path:     page.Path,
			Tier:     page.Tier,
			Priority: page.Priority,
		})
	}

	data, err := json.MarshalIndent(planArtifact{Plan: plan, Paths: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan artifact: %w", err)
	}

	return a.writeFile("plan.json", data)
}

// WriteSitemaps writes the sitemap index and every category sitemap.
func (a *Artifacts) WriteSitemaps(output *sitemap.Output) error {
	if err := a.writeFile(sitemap.IndexPath(), output.Index); err != nil {
		return err
	}

	for category, doc := range output.Categories {
		if err := a.writeFile(sitemap.CategoryPath(category), doc); err != nil {
			return err
		}
	}

	return nil
}

// WriteRobots writes robots.txt for the given site origin.
func (a *Artifacts) WriteRobots(baseURL string) error {
	return a.writeFile("/robots.txt", []byte(sitemap.RobotsTxt(baseURL)))
}

// writeFile writes one artifact below the output root, creating parent
// directories as needed.
func (a *Artifacts) writeFile(relPath string, data []byte) error {
	target := filepath.Join(a.outDir, filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	if err := os.WriteFile(target, data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}

	return nil
}
