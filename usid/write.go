package usid

import (
	"fmt"
	gopath "path"
	"sort"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// CreateResultsGroup creates "<main>-<suffix>_NNN" next to the main dataset,
// picking the first free zero-padded index so repeated processing runs never
// collide. It returns the new group and its path.
func CreateResultsGroup(f *File, mainPath, suffix string) (*hdf5.Group, string, error) {
	parentPath := gopath.Dir(mainPath)

	parent := f.h.Root()
	if parentPath != "/" && parentPath != "" {
		var err error
		parent, err = f.h.OpenGroup(parentPath)
		if err != nil {
			return nil, "", fmt.Errorf("usid: opening %s: %w", parentPath, err)
		}
	}

	members, err := parent.Members()
	if err != nil {
		return nil, "", fmt.Errorf("usid: listing %s: %w", parentPath, err)
	}

	have := make(map[string]bool, len(members))
	for _, m := range members {
		have[m] = true
	}

	base := fmt.Sprintf("%s-%s", gopath.Base(mainPath), suffix)
	name := ""
	for i := 0; ; i++ {
		candidate := fmt.Sprintf("%s_%03d", base, i)
		if !have[candidate] {
			name = candidate
			break
		}
	}

	g, err := parent.CreateGroup(name)
	if err != nil {
		return nil, "", fmt.Errorf("usid: creating results group %s: %w", name, err)
	}

	return g, gopath.Join(parentPath, name), nil
}

// AttrOptions converts a parameter map into dataset attribute options with a
// stable ordering.
func AttrOptions(params map[string]any) []hdf5.DatasetOption {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	opts := make([]hdf5.DatasetOption, 0, len(keys))
	for _, k := range keys {
		opts = append(opts, hdf5.WithAttribute(k, normalizeAttrValue(params[k])))
	}
	return opts
}

// normalizeAttrValue widens small integer types so attribute round trips stay
// type-stable.
func normalizeAttrValue(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint32:
		return int64(n)
	default:
		return v
	}
}
