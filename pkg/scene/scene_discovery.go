package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownScene is returned for a scene id that is neither built in nor a file
var ErrUnknownScene = errors.New("unknown scene")

const builtinGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// builder constructs a built-in scene for a given image size
type builder func(width, height int) (*Scene, error)

var builtins = []struct {
	info  SceneInfo
	build builder
}{
	{SceneInfo{ID: "default", Name: "Default World", Description: "Two concentric spheres under a single white light"}, NewDefaultScene},
	{SceneInfo{ID: "planes", Name: "Planes", Description: "Three spheres resting on a floor plane"}, NewPlaneScene},
	{SceneInfo{ID: "patterns", Name: "Patterns", Description: "Striped, gradient, ring, checker and UV checker patterns"}, NewPatternScene},
	{SceneInfo{ID: "reflection-refraction", Name: "Reflection and Refraction", Description: "Reflective room with glass spheres"}, NewReflectionRefractionScene},
	{SceneInfo{ID: "fresnel", Name: "Fresnel", Description: "Hollow glass sphere in front of a checkered wall"}, NewFresnelScene},
	{SceneInfo{ID: "globe", Name: "Globe", Description: "UV checkered sphere above a reflective floor"}, NewGlobeScene},
}

// ListBuiltinScenes returns the scenes compiled into the program
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		info := b.info
		info.Group = builtinGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// NewBuiltin builds the built-in scene with the given id
func NewBuiltin(id string, width, height int) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == id {
			return b.build(width, height)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}

// ListJSONScenes scans dir for *.json scene descriptions. A missing
// directory yields an empty list.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseJSONMetadata(filePath)
		if err != nil {
			// Skip unreadable files, keep the rest
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes, nil
}

// ParseJSONMetadata reads the name, description and group of a JSON scene
// file, falling back to values derived from the file name.
func ParseJSONMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       "json:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Group:    "Scene Files",
		Type:     "json",
		FilePath: filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return info, err
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return info, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}

	if meta.Name != "" {
		info.Name = meta.Name
	}
	if meta.Group != "" {
		info.Group = meta.Group
	}
	info.Description = meta.Description
	return info, nil
}

// ListAllScenes returns built-in and JSON scenes, grouped by category with
// the built-in group first
func ListAllScenes(dir string) ([]SceneGroup, error) {
	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}

	allScenes := append(ListBuiltinScenes(), jsonScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	groups := []SceneGroup{{Name: builtinGroup, Scenes: groupMap[builtinGroup]}}
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups, nil
}

// Load resolves a scene reference: a built-in id, "json:<name>" for a file
// in dir, or a path to a JSON file. width and height override the scene's
// camera size when positive.
func Load(ref, dir string, width, height int) (*Scene, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty scene name", ErrUnknownScene)
	}
	if name, ok := strings.CutPrefix(ref, "json:"); ok {
		ref = filepath.Join(dir, name+".json")
	}
	if strings.HasSuffix(strings.ToLower(ref), ".json") {
		return LoadFile(ref, width, height)
	}

	w, h := width, height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return NewBuiltin(ref, w, h)
}

// titleCase converts a filename-style string to title case
// e.g., "three-spheres" -> "Three Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
