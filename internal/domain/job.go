package domain

// Job is the canonical posting record produced by extraction. JobID is the
// dedup identity: an explicit id from the raw posting when one exists, else
// the resolved URL.
type Job struct {
	Company  string `json:"company"`
	JobID    string `json:"job_id"`
	Title    string `json:"title"`
	Team     string `json:"team"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// Board is one tracked company board from the registry.
type Board struct {
	Company string
	URL     string
}
