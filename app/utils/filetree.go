package utils

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FileNode represents a node in the file tree.
type FileNode struct {
	Name     string
	Path     string // original path, only set on file nodes
	IsFile   bool
	Children map[string]*FileNode
}

func (n *FileNode) addChild(name string, isFile bool) *FileNode {
	if n.Children == nil {
		n.Children = make(map[string]*FileNode)
	}
	if child, ok := n.Children[name]; ok {
		return child
	}
	child := &FileNode{Name: name, IsFile: isFile}
	n.Children[name] = child
	return child
}

// BuildFileTree builds a tree from slash or OS separated paths.
// Empty path segments are ignored, so absolute paths work too.
func BuildFileTree(paths []string) *FileNode {
	root := &FileNode{Children: make(map[string]*FileNode)}
	for _, fullPath := range paths {
		var parts []string
		for _, part := range strings.Split(filepath.ToSlash(fullPath), "/") {
			if part != "" && part != "." {
				parts = append(parts, part)
			}
		}
		current := root
		for i, part := range parts {
			isFile := i == len(parts)-1
			current = current.addChild(part, isFile)
			if isFile {
				current.Path = fullPath
			}
		}
	}
	return root
}

// MarkFunc returns a suffix for a file node, e.g. "(skipped)". Empty means none.
type MarkFunc func(path string) string

// RenderFileTree renders node and its children using branch characters.
// skipSelf omits the line for node itself.
func RenderFileTree(node *FileNode, prefix string, isLast bool, skipSelf bool, mark MarkFunc) string {
	var line string
	if !skipSelf && node.Name != "" {
		branch := "┣"
		if isLast {
			branch = "┗"
		}
		name := node.Name
		if !node.IsFile {
			name += "/"
		} else if mark != nil {
			if suffix := mark(node.Path); suffix != "" {
				name += " " + suffix
			}
		}
		line = fmt.Sprintf("%s%s %s\n", prefix, branch, name)
	}

	newPrefix := prefix
	if node.Name != "" && !skipSelf {
		if isLast {
			newPrefix += "   "
		} else {
			newPrefix += "┃  "
		}
	}

	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	result := line
	for i, name := range names {
		result += RenderFileTree(node.Children[name], newPrefix, i == len(names)-1, false, mark)
	}
	return result
}

// RenderPlannedTree renders paths as a tree without a root line.
func RenderPlannedTree(paths []string, mark MarkFunc) string {
	return RenderFileTree(BuildFileTree(paths), "", true, true, mark)
}
