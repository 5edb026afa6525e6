package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/littler00t/md2dir/model"
)

// GetFileActionsAndDirs determines which targets are new vs. overwritten
// and which directories need to be created first.
func GetFileActionsAndDirs(targetPaths []string) (map[string]string, map[string]struct{}) {
	fileActions := make(map[string]string)
	dirsToCreate := make(map[string]struct{})

	for _, path := range targetPaths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fileActions[path] = "create"
			dir := filepath.Dir(path)
			if dir != "." && dir != "/" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					dirsToCreate[dir] = struct{}{}
				}
			}
		} else {
			fileActions[path] = "modify"
		}
	}
	return fileActions, dirsToCreate
}

// CreateDirs creates the given directories, parents included.
func CreateDirs(dirs map[string]struct{}) error {
	sortedDirs := make([]string, 0, len(dirs))
	for dir := range dirs {
		sortedDirs = append(sortedDirs, dir)
	}
	sort.Strings(sortedDirs)

	for _, dir := range sortedDirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	}
	return nil
}

// Apply writes each assignment under outputRoot, in assignment order.
// Existing files are overwritten. A failed write does not roll back
// earlier ones; failures are collected into the summary instead.
func Apply(outputRoot string, assignments []model.Assignment) (model.Summary, error) {
	targetPaths := make([]string, len(assignments))
	for i, a := range assignments {
		targetPaths[i] = filepath.Join(outputRoot, a.Path)
	}

	actions, dirs := GetFileActionsAndDirs(targetPaths)
	if err := CreateDirs(dirs); err != nil {
		return model.Summary{}, err
	}

	var summary model.Summary
	for i, a := range assignments {
		target := targetPaths[i]
		if err := os.WriteFile(target, []byte(a.Block.Content), 0644); err != nil {
			summary.Failed = append(summary.Failed, target)
			continue
		}
		if actions[target] == "create" {
			summary.Created = append(summary.Created, target)
		} else {
			summary.Modified = append(summary.Modified, target)
		}
	}
	return summary, nil
}
