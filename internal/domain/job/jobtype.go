// Package job holds the pure logic shared by every processing-job workflow:
// the job-type registry, net-weight computation, derived totals, line-item
// accumulation and completion validation. Nothing here touches persistence.
package job

import "strconv"

// Job type keys.
const (
	TypeQsage            = "qsage"
	TypeSortex           = "sortex"
	TypeSpiral           = "spiral"
	TypeMixing           = "mixing"
	TypeBagging          = "bagging"
	TypeOrderFulfillment = "order_fulfillment"
)

// Destination collections for output rows.
const (
	DestClean      = "clean_storage"
	DestReruns     = "rerun_storage"
	DestScreenings = "screenings_storage"
	DestTrash      = "trash_storage"
	DestMixed      = "mixed_storage"
	DestBagged     = "bagged_storage"
	DestStaging    = "order_staging"
	DestCO2        = "co2_draws"
)

// OutputCategory describes one output section of a job form: the map key used
// in JobDraft.OutputLines, the single-letter code in generated box IDs, and
// the destination collection completed rows land in.
type OutputCategory struct {
	Key         string
	Label       string
	Code        string
	Destination string
}

// Config parameterizes the reconciliation workflow for one job type. The six
// job forms are rows in this table rather than six copies of the workflow.
type Config struct {
	Type            string
	Label           string
	Categories      []OutputCategory
	RequireEmployee bool
}

var configs = map[string]Config{
	TypeQsage: {
		Type:            TypeQsage,
		Label:           "Qsage",
		RequireEmployee: true,
		Categories: []OutputCategory{
			{Key: "clean", Label: "Clean", Code: "C", Destination: DestClean},
			{Key: "reruns", Label: "Reruns", Code: "R", Destination: DestReruns},
			{Key: "screenings_light", Label: "Light Screenings", Code: "SL", Destination: DestScreenings},
			{Key: "screenings_heavy", Label: "Heavy Screenings", Code: "SH", Destination: DestScreenings},
			{Key: "trash", Label: "Trash", Code: "T", Destination: DestTrash},
		},
	},
	TypeSortex: {
		Type:            TypeSortex,
		Label:           "Sortex",
		RequireEmployee: true,
		Categories: []OutputCategory{
			{Key: "clean", Label: "Clean", Code: "C", Destination: DestClean},
			{Key: "reruns", Label: "Reruns", Code: "R", Destination: DestReruns},
			{Key: "screenings", Label: "Screenings", Code: "S", Destination: DestScreenings},
			{Key: "trash", Label: "Trash", Code: "T", Destination: DestTrash},
		},
	},
	TypeSpiral: {
		Type:            TypeSpiral,
		Label:           "Spiral",
		RequireEmployee: true,
		Categories: []OutputCategory{
			{Key: "clean", Label: "Clean", Code: "C", Destination: DestClean},
			{Key: "reruns", Label: "Reruns", Code: "R", Destination: DestReruns},
			{Key: "trash", Label: "Trash", Code: "T", Destination: DestTrash},
		},
	},
	TypeMixing: {
		Type:            TypeMixing,
		Label:           "Mixing",
		RequireEmployee: true,
		Categories: []OutputCategory{
			{Key: "mixed", Label: "Mixed", Code: "M", Destination: DestMixed},
			{Key: "trash", Label: "Trash", Code: "T", Destination: DestTrash},
		},
	},
	TypeBagging: {
		Type:            TypeBagging,
		Label:           "Bagging",
		RequireEmployee: true,
		Categories: []OutputCategory{
			{Key: "bagged", Label: "Bagged", Code: "B", Destination: DestBagged},
			{Key: "trash", Label: "Trash", Code: "T", Destination: DestTrash},
		},
	},
	TypeOrderFulfillment: {
		Type:  TypeOrderFulfillment,
		Label: "Order Fulfillment",
		Categories: []OutputCategory{
			{Key: "pallets", Label: "Pallets", Code: "P", Destination: DestStaging},
			{Key: "co2_draws", Label: "CO2 Draws", Code: "D", Destination: DestCO2},
		},
	},
}

// Lookup returns the workflow config for a job type key.
func Lookup(jobType string) (Config, bool) {
	cfg, ok := configs[jobType]
	return cfg, ok
}

// Types lists the registered job type keys.
func Types() []string {
	return []string{TypeQsage, TypeSortex, TypeSpiral, TypeMixing, TypeBagging, TypeOrderFulfillment}
}

// Category finds a category of this config by key.
func (c Config) Category(key string) (OutputCategory, bool) {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat, true
		}
	}
	return OutputCategory{}, false
}

// BoxID builds the generated identifier for an output line:
// processID + category code + box number, e.g. "QS1042" + "C" + 1 -> "QS1042C1".
func BoxID(processID, categoryCode string, boxNumber int) string {
	return processID + categoryCode + strconv.Itoa(boxNumber)
}
