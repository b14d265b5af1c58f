package model

// Company is a directory record shown in the research dashboard.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Industry    string `json:"industry"`
	Stage       string `json:"stage"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Founded     int    `json:"founded"`
}
