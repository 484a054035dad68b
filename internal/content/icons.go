package content

// DefaultIcon is used when a strength item names an unknown icon.
const DefaultIcon = "Star"

// iconNames is the fixed set of icon identifiers the templates can render.
var iconNames = map[string]struct{}{
	"Heart":        {},
	"ShieldCheck":  {},
	"Users":        {},
	"Globe":        {},
	"BadgePercent": {},
	"Star":         {},
	"Award":        {},
	"Zap":          {},
}

// IconNames lists the valid icon identifiers in display order.
func IconNames() []string {
	return []string{"Heart", "ShieldCheck", "Users", "Globe", "BadgePercent", "Star", "Award", "Zap"}
}

// NormalizeIcon maps unrecognized icon names to the default icon.
func NormalizeIcon(name string) string {
	if _, ok := iconNames[name]; ok {
		return name
	}

	return DefaultIcon
}
