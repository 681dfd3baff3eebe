package sparselife

import (
	"strconv"

	"sparse-life/internal/core"
)

// Parameters reports how the world was seeded together with its live counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	source := "soup"
	switch {
	case l.cfg.File != "":
		source = l.cfg.File
	case l.cfg.Pattern != "":
		source = l.cfg.Pattern
	}
	seeding := []core.Parameter{
		{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: source},
		int64Param("seed", "Seed", l.seed),
	}
	if source == "soup" {
		seeding = append(seeding,
			intParam("soup_w", "Soup width", l.cfg.SoupWidth),
			intParam("soup_h", "Soup height", l.cfg.SoupHeight),
			floatParam("density", "Density", l.cfg.Density),
		)
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(l.Generation(), 10)},
				intParam("population", "Population", l.Population()),
			},
		},
		{Name: "Seeding", Params: seeding},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'f', -1, 64)}
}
