package models

// CurrentUser is the authenticated caller as seen by the state layer.
type CurrentUser struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Plan PlanInfo `json:"plan"`
}
