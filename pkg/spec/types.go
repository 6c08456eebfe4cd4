package spec

// CaseSpec is the top-level case definition: one assembly plus the expansion
// scenario to run against it.
type CaseSpec struct {
	CaseVersion string      `yaml:"case_version" json:"case_version"`
	Settings    SettingsDef `yaml:"settings" json:"settings"`
	Assembly    AssemblyDef `yaml:"assembly" json:"assembly"`
	Scenario    ScenarioDef `yaml:"scenario" json:"scenario"`
}

// SettingsDef holds the case-level switches. Values here take effect unless
// overridden by the settings file or command line.
type SettingsDef struct {
	DetailedAxialExpansion bool `yaml:"detailed_axial_expansion" json:"detailed_axial_expansion"`
	ColdBlockHeights       bool `yaml:"cold_block_heights" json:"cold_block_heights"`
}

// AssemblyDef describes one assembly, blocks ordered bottom to top.
type AssemblyDef struct {
	Name   string     `yaml:"name" json:"name"`
	Blocks []BlockDef `yaml:"blocks" json:"blocks"`
}

// BlockByName returns the block definition with the given name, or nil if not
// found.
func (a AssemblyDef) BlockByName(name string) *BlockDef {
	for i := range a.Blocks {
		if a.Blocks[i].Name == name {
			return &a.Blocks[i]
		}
	}
	return nil
}

// BlockDef defines one axial block.
type BlockDef struct {
	Name   string   `yaml:"name" json:"name"`
	Flags  []string `yaml:"flags" json:"flags"`
	Height float64  `yaml:"height" json:"height"`

	// TargetComponent overrides automatic expansion target selection for
	// this block when set.
	TargetComponent string `yaml:"target_component,omitempty" json:"target_component,omitempty"`

	Components []ComponentDef `yaml:"components" json:"components"`
}

// ComponentByName returns the component definition with the given name, or
// nil if not found.
func (b BlockDef) ComponentByName(name string) *ComponentDef {
	for i := range b.Components {
		if b.Components[i].Name == name {
			return &b.Components[i]
		}
	}
	return nil
}

// ComponentDef defines one component of a block.
type ComponentDef struct {
	Name             string             `yaml:"name" json:"name"`
	Flags            []string           `yaml:"flags" json:"flags"`
	Material         string             `yaml:"material" json:"material"`
	Temperature      float64            `yaml:"temperature" json:"temperature"`
	InputTemperature float64            `yaml:"input_temperature" json:"input_temperature"`
	Shape            ShapeDef           `yaml:"shape" json:"shape"`
	NumberDensities  map[string]float64 `yaml:"number_densities" json:"number_densities"`

	// Lattice lists occupied [i, j] grid positions for multi-pin components.
	Lattice [][2]int `yaml:"lattice,omitempty" json:"lattice,omitempty"`
}

// ShapeDef defines a component cross-section. Which dimension fields apply
// depends on kind: circle uses od/id, hexagon op/ip, rectangle the
// width/length pairs, helix od/id/helix_pitch.
type ShapeDef struct {
	Kind string  `yaml:"kind" json:"kind"`
	OD   float64 `yaml:"od,omitempty" json:"od,omitempty"`
	ID   float64 `yaml:"id,omitempty" json:"id,omitempty"`
	OP   float64 `yaml:"op,omitempty" json:"op,omitempty"`
	IP   float64 `yaml:"ip,omitempty" json:"ip,omitempty"`

	OuterW float64 `yaml:"outer_w,omitempty" json:"outer_w,omitempty"`
	OuterL float64 `yaml:"outer_l,omitempty" json:"outer_l,omitempty"`
	InnerW float64 `yaml:"inner_w,omitempty" json:"inner_w,omitempty"`
	InnerL float64 `yaml:"inner_l,omitempty" json:"inner_l,omitempty"`

	HelixPitch float64 `yaml:"helix_pitch,omitempty" json:"helix_pitch,omitempty"`
	Mult       float64 `yaml:"mult,omitempty" json:"mult,omitempty"`
}

// Scenario kinds.
const (
	ScenarioThermal    = "thermal"
	ScenarioPrescribed = "prescribed"
)

// ScenarioDef describes the expansion to perform. A thermal scenario applies
// a 1-D axial temperature field; a prescribed scenario applies explicit
// growth factors to components addressed as "block/component".
type ScenarioDef struct {
	Kind string `yaml:"kind" json:"kind"`

	TempGrid  []float64 `yaml:"temp_grid,omitempty" json:"temp_grid,omitempty"`
	TempField []float64 `yaml:"temp_field,omitempty" json:"temp_field,omitempty"`

	Components []string  `yaml:"components,omitempty" json:"components,omitempty"`
	Factors    []float64 `yaml:"factors,omitempty" json:"factors,omitempty"`
}
