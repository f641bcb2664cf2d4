package hello

// Data models the response payload for the hello test endpoint.
type Data struct {
	Message string `json:"message" doc:"Greeting message" example:"Hello from MicFx!"`
}

// TestOutput is the response wrapper for the test endpoint.
type TestOutput struct {
	Body Data
}
