package parsers

import (
	"errors"
	"fmt"

	"github.com/nlpodyssey/gopickle/pickle"
	"github.com/nlpodyssey/gopickle/types"
)

// Pickle parses .pickle and .pkl files produced by Python's pickle module.
// The pickled object must be a dict with string keys.
type Pickle struct{}

func (Pickle) Parse(data []byte) (map[string]any, error) {
	obj, err := pickle.Loads(string(data))
	if err != nil {
		return nil, fmt.Errorf("error decoding pickle configs: %w", err)
	}

	d, ok := obj.(*types.Dict)
	if !ok {
		return nil, errors.New("top-level content is not a dict")
	}

	cfg := make(map[string]any, d.Len())
	for _, entry := range *d {
		key, ok := entry.Key.(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", entry.Key)
		}
		cfg[key] = pickleValue(entry.Value)
	}

	return cfg, nil
}

// pickleValue converts gopickle container types into plain Go values so that
// nested structures behave like the other formats' output. Values with no
// plain equivalent are returned unchanged.
func pickleValue(v any) any {
	switch t := v.(type) {
	case *types.Dict:
		out := make(map[string]any, t.Len())
		for _, entry := range *t {
			key, ok := entry.Key.(string)
			if !ok {
				return v
			}
			out[key] = pickleValue(entry.Value)
		}
		return out
	case *types.List:
		out := make([]any, 0, t.Len())
		for _, item := range *t {
			out = append(out, pickleValue(item))
		}
		return out
	case *types.Tuple:
		out := make([]any, 0, t.Len())
		for _, item := range *t {
			out = append(out, pickleValue(item))
		}
		return out
	default:
		return v
	}
}
