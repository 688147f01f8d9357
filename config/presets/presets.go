package presets

import (
	"fmt"
	"sort"

	"github.com/aicredit/go-aicredit/config"
)

var presets = map[string]config.Config{}

func register(name string, conf config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	presets[name] = conf
}

// Options returns names of the registered presets.
func Options() []string {
	var rst []string
	for name := range presets {
		rst = append(rst, name)
	}
	sort.Strings(rst)
	return rst
}

// Get a copy of the preset.
func Get(name string) (config.Config, error) {
	if preset, exist := presets[name]; exist {
		return preset, nil
	}
	return config.Config{}, fmt.Errorf("preset %s is not registered. select one from %+s", name, Options())
}
