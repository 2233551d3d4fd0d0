package models

type Module struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// ModuleDetail is a module annotated with the id of the programme owning it.
type ModuleDetail struct {
	Module      `yaml:",inline"`
	ProgrammeID int `json:"programmeId" yaml:"programmeId"`
}

func (m *Module) NextTaskID() int {
	max := 0
	for _, t := range m.Tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
