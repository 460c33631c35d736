package entities

// Procedure describes a medical procedure patients can look up before a
// hospital visit. Loaded statically, immutable at runtime.
type Procedure struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	Steps             []string `json:"steps"`
	RequiredDocuments []string `json:"requiredDocuments"`
	EstimatedTime     string   `json:"estimatedTime"`
	Specialty         string   `json:"specialty"`
}
