package main

// ToolSelector holds the active tool and the feature toggles. It does no
// validation; the controller reads it to pick a gesture.
type ToolSelector struct {
	tool          Tool
	gridEnabled   bool
	guidesEnabled bool
}

func NewToolSelector(gridEnabled, guidesEnabled bool) *ToolSelector {
	return &ToolSelector{
		tool:          ToolSelect,
		gridEnabled:   gridEnabled,
		guidesEnabled: guidesEnabled,
	}
}

func (s *ToolSelector) Tool() Tool {
	return s.tool
}

func (s *ToolSelector) SetTool(tool Tool) {
	s.tool = tool
}

func (s *ToolSelector) GridEnabled() bool {
	return s.gridEnabled
}

func (s *ToolSelector) ToggleGrid() {
	s.gridEnabled = !s.gridEnabled
}

func (s *ToolSelector) GuidesEnabled() bool {
	return s.guidesEnabled
}

func (s *ToolSelector) ToggleGuides() {
	s.guidesEnabled = !s.guidesEnabled
}
