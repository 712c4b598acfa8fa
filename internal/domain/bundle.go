// Package domain defines core types, interfaces, and errors for the
// governance explorer.
package domain

// Sentinel values used instead of errors when a fact cannot be resolved
// from the input documents.
const (
	// Unassigned is returned when a stage lookup finds no assignee.
	Unassigned = "Unassigned"
	// DaysUnknown marks an indeterminate days-in-stage value. Distinct from
	// a real zero-day value.
	DaysUnknown = -1
)

// Entity kinds as they appear in audit documents.
const (
	EntityBundle = "governanceBundle"
	EntityStage  = "governancePolicyStage"
)

// Bundle is a read-only snapshot of one governance workflow item. Raw
// timestamps stay strings; callers normalize them through the temporal
// package.
type Bundle struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	State        string            `json:"state"`
	CurrentStage string            `json:"currentStage"`
	ProjectName  string            `json:"projectName"`
	PolicyName   string            `json:"policyName"`
	Owner        string            `json:"owner"`
	CreatedAt    string            `json:"createdAt"`
	Stages       []StageAssignment `json:"stages"`
	Attachments  []Attachment      `json:"attachments"`
}

// StageAssignment pairs a workflow stage with its assignee. Insertion order
// in Bundle.Stages is not meaningful for display.
type StageAssignment struct {
	StageName    string `json:"stageName"`
	AssigneeName string `json:"assigneeName"`
}

// Attachment is a file or report attached to a bundle. Branch is empty when
// the attachment identifier carries none.
type Attachment struct {
	CreatedAt string `json:"createdAt"`
	Branch    string `json:"branch"`
}
