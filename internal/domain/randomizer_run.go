package domain

import "time"

type RandomizationResult struct {
	MainList    []EmployeeSnapshot `json:"mainList"`
	StandbyList []EmployeeSnapshot `json:"standbyList"`
}

type RandomizerRun struct {
	ID              int64               `json:"id"`
	TriggerDateTime time.Time           `json:"triggerDateTime"`
	Shift           string              `json:"shift"`
	Result          RandomizationResult `json:"randomizerResult"`
}
