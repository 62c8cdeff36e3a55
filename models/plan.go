package models

import "strings"

type PlanTier string

const (
	PlanFree PlanTier = "FREE"
	PlanPlus PlanTier = "PLUS"

	// FreePlanServiceLimit is the number of managed services a FREE user may publish.
	FreePlanServiceLimit = 1
)

// PlanInfo is resolved once by the auth layer and handed to workflows.
type PlanInfo struct {
	Tier PlanTier `json:"tier"`
}

// ParsePlanTier maps a free-text subscription label to a tier. Anything that
// mentions "plus" or "premium", or is exactly "pro", is PLUS.
func ParsePlanTier(raw string) PlanTier {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case v == "":
		return PlanFree
	case v == "pro", strings.Contains(v, "plus"), strings.Contains(v, "premium"):
		return PlanPlus
	default:
		return PlanFree
	}
}

// ServiceLimit returns the maximum number of managed services, or -1 for unlimited.
func (p PlanInfo) ServiceLimit() int {
	if p.Tier == PlanPlus {
		return -1
	}
	return FreePlanServiceLimit
}

// CanPublish reports whether another service may be added given the current count.
func (p PlanInfo) CanPublish(current int) bool {
	limit := p.ServiceLimit()
	return limit < 0 || current < limit
}
