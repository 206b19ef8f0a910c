package schedule

import (
	"regexp"
	"sort"
	"strings"

	"github.com/trezcool/ratiba/core"
)

var (
	// A learner group code is a letter A-H plus a digit 1-2.
	groupCodeRegex = regexp.MustCompile(`^[a-h][1-2]$`)
	// The same shape found anywhere inside free text, optional whitespace between.
	groupScanRegex = regexp.MustCompile(`([a-h])\s*([1-2])`)
)

// Fixed display colors the rendering surface assigns per group code.
var groupColors = map[string]string{
	"A1": "#1f77b4", "A2": "#aec7e8",
	"B1": "#ff7f0e", "B2": "#ffbb78",
	"C1": "#2ca02c", "C2": "#98df8a",
	"D1": "#d62728", "D2": "#ff9896",
	"E1": "#9467bd", "E2": "#c5b0d5",
	"F1": "#8c564b", "F2": "#c49c94",
	"G1": "#e377c2", "G2": "#f7b6d2",
	"H1": "#17becf", "H2": "#9edae5",

	Ungrouped: "#7f7f7f",
	AllGroups: "#333333",
}

// DeriveLearnerGroup resolves a canonical group code from the explicit group
// column and, failing that, from the section and session names. It never
// fails: unclassifiable rows get Ungrouped.
func DeriveLearnerGroup(explicit, sessionName, sectionName string) string {
	if g := core.CleanString(explicit, true /* lower */); groupCodeRegex.MatchString(g) {
		return strings.ToUpper(g)
	}
	for _, text := range []string{sectionName, sessionName} {
		if m := groupScanRegex.FindStringSubmatch(strings.ToLower(text)); m != nil {
			return strings.ToUpper(m[1] + m[2])
		}
	}
	return Ungrouped
}

// GroupOption is one entry of the group filter the UI renders.
type GroupOption struct {
	Value string `json:"value"`
	Color string `json:"color"`
}

// GroupOptions computes the distinct learner groups present in events,
// ordered by letter then digit with Ungrouped forced last, and prepends the
// synthetic AllGroups entry. It is recomputed on every call; there is no
// persisted state.
func GroupOptions(events []Event) []GroupOption {
	seen := make(map[string]bool, len(events))
	groups := make([]string, 0, len(events))
	for _, evt := range events {
		if !seen[evt.LearnerGroup] {
			seen[evt.LearnerGroup] = true
			groups = append(groups, evt.LearnerGroup)
		}
	}

	sort.Slice(groups, func(i, j int) bool {
		gi, gj := groups[i], groups[j]
		if gi == Ungrouped || gj == Ungrouped {
			return gj == Ungrouped
		}
		return gi < gj
	})

	options := make([]GroupOption, 0, len(groups)+1)
	options = append(options, GroupOption{Value: AllGroups, Color: groupColors[AllGroups]})
	for _, g := range groups {
		options = append(options, GroupOption{Value: g, Color: groupColor(g)})
	}
	return options
}

func groupColor(g string) string {
	if color, ok := groupColors[g]; ok {
		return color
	}
	return groupColors[Ungrouped]
}
