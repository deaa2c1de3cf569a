package argumentum

// optionGroup is a named set of options. Exclusivity is fixed at creation;
// re-declaring the same name with the other exclusivity is a programming
// error. Group names are case-insensitive and stored lowercased.
type optionGroup struct {
	name      string
	required  bool
	exclusive bool
}

// setRequired is monotonic: a group declared in multiple places is required
// as soon as any declaration site requires it.
func (g *optionGroup) setRequired(required bool) {
	if !g.required {
		g.required = required
	}
}

// GroupConfig configures a group after AddGroup or AddExclusiveGroup.
type GroupConfig struct {
	group *optionGroup
}

func (c *GroupConfig) SetRequired(required bool) *GroupConfig {
	c.group.setRequired(required)
	return c
}
